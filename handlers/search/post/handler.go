package post

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/neosearch/auth"
	"github.com/a-h/neosearch/models"
	"github.com/a-h/neosearch/search"
	"github.com/a-h/respond"
)

const MessageInvalidBody = "Invalid request body."

type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, search.Stats, error)
}

// New creates the search handler. If apiKey is empty, every request fails
// before the searcher is called.
func New(log *slog.Logger, apiKey string, searcher Searcher) Handler {
	return Handler{
		log:      log,
		apiKey:   apiKey,
		searcher: searcher,
	}
}

type Handler struct {
	log      *slog.Logger
	apiKey   string
	searcher Searcher
}

func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.apiKey == "" {
		h.log.Error("NEOCITIES_API_KEY is not set")
		respond.WithJSON(w, models.ErrorResponse{Error: search.MessageMissingAPIKey}, http.StatusInternalServerError)
		return
	}

	var req models.SearchRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("failed to decode body", slog.Any("error", err))
		respond.WithJSON(w, models.ErrorResponse{Error: MessageInvalidBody}, http.StatusBadRequest)
		return
	}

	results, stats, err := h.searcher.Search(r.Context(), req.Query)
	if err != nil {
		h.log.Error("search failed", slog.Any("error", err))
		respond.WithJSON(w, models.ErrorResponse{Error: search.ErrorMessage(err)}, http.StatusInternalServerError)
		return
	}

	user, _ := auth.GetUser(r)
	h.log.Info("search complete",
		slog.String("user", user),
		slog.Int("queryLength", len(req.Query)),
		slog.Int("files", stats.Files),
		slog.Int("searched", stats.Searched),
		slog.Int("matches", stats.Matches))

	respond.WithJSON(w, models.SearchResponse{Documents: results}, http.StatusOK)
}
