package routes

import (
	"log/slog"
	"net/http"

	"github.com/a-h/neosearch/auth"
	healthget "github.com/a-h/neosearch/handlers/health/get"
	"github.com/a-h/neosearch/handlers/mcp"
	"github.com/a-h/neosearch/handlers/methods"
	searchpost "github.com/a-h/neosearch/handlers/search/post"
	"github.com/a-h/neosearch/neocities"
	"github.com/a-h/neosearch/search"
	"github.com/rs/cors"
)

type Config struct {
	// NeocitiesAPIKey authorizes the list call. If empty, searches fail with a 500.
	NeocitiesAPIKey          string
	NeocitiesAPIURL          string
	NeocitiesSiteURLTemplate string
	// MCPPath is the path of the MCP endpoint, e.g. /mcp. If empty, MCP is disabled.
	MCPPath string
	// APIKeyToUserName enables authentication of callers when not empty.
	APIKeyToUserName map[string]string
	Version          string
}

func (c Config) withDefaults() Config {
	if c.NeocitiesAPIURL == "" {
		c.NeocitiesAPIURL = neocities.DefaultAPIURL
	}
	if c.NeocitiesSiteURLTemplate == "" {
		c.NeocitiesSiteURLTemplate = neocities.DefaultSiteURLTemplate
	}
	return c
}

// New creates the handler for all routes.
func New(log *slog.Logger, c Config) http.Handler {
	c = c.withDefaults()
	searcher := search.New(neocities.New(c.NeocitiesAPIURL, c.NeocitiesSiteURLTemplate, c.NeocitiesAPIKey))

	mux := http.NewServeMux()
	mux.Handle("/", methods.New(map[string]http.Handler{
		http.MethodGet:  healthget.New(),
		http.MethodPost: searchpost.New(log, c.NeocitiesAPIKey, searcher),
	}))
	if c.MCPPath != "" {
		mux.Handle(c.MCPPath, mcp.New(log, c.Version, c.NeocitiesAPIKey, searcher))
	}

	var h http.Handler = mux
	if len(c.APIKeyToUserName) > 0 {
		h = auth.New(c.APIKeyToUserName, h)
	}
	return cors.AllowAll().Handler(h)
}
