// Package handler is the serverless entry point. The hosting platform routes
// requests to Handler, and injects configuration as environment variables.
package handler

import (
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/a-h/neosearch"
	"github.com/a-h/neosearch/routes"
)

var getHandler = sync.OnceValue(func() http.Handler {
	return newHandler(os.Getenv)
})

func newHandler(getenv func(string) string) http.Handler {
	log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	return routes.New(log, routes.Config{
		NeocitiesAPIKey:          getenv("NEOCITIES_API_KEY"),
		NeocitiesAPIURL:          getenv("NEOCITIES_API_URL"),
		NeocitiesSiteURLTemplate: getenv("NEOCITIES_SITE_URL_TEMPLATE"),
		MCPPath:                  getenv("MCP_PATH"),
		Version:                  neosearch.Version,
	})
}

func Handler(w http.ResponseWriter, r *http.Request) {
	getHandler().ServeHTTP(w, r)
}
