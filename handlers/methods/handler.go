package methods

import (
	"net/http"

	"github.com/a-h/neosearch/models"
	"github.com/a-h/respond"
)

// New creates a handler that routes requests to a handler by HTTP method.
// Requests using any other method receive a 405 JSON error.
func New(methodToHandler map[string]http.Handler) Handler {
	return Handler{
		methodToHandler: methodToHandler,
	}
}

type Handler struct {
	methodToHandler map[string]http.Handler
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	next, ok := h.methodToHandler[r.Method]
	if !ok {
		respond.WithJSON(w, models.ErrorResponse{Error: "Method Not Allowed"}, http.StatusMethodNotAllowed)
		return
	}
	next.ServeHTTP(w, r)
}
