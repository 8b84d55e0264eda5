package get

import (
	"net/http"

	"github.com/a-h/neosearch/models"
	"github.com/a-h/respond"
)

// Response is returned for every GET request.
var Response = models.HealthResponse{
	Status:  "ok",
	Service: "neosearch",
}

func New() Handler {
	return Handler{}
}

type Handler struct{}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.WithJSON(w, Response, http.StatusOK)
}
