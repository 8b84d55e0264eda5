package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/neosearch/models"
	"github.com/a-h/neosearch/search"
	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

const ToolName = "search"

type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, search.Stats, error)
}

// NewServer creates an MCP server with a single search tool.
func NewServer(log *slog.Logger, version, apiKey string, searcher Searcher) *sdk.Server {
	t := tool{
		log:      log,
		apiKey:   apiKey,
		searcher: searcher,
	}
	server := sdk.NewServer(&sdk.Implementation{
		Name:    "neosearch",
		Version: version,
	}, nil)
	server.AddTool(&sdk.Tool{
		Name:        ToolName,
		Description: "Search the HTML pages of the Neocities site for text. Returns matching pages with a snippet of their content.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query": {
					Type:        "string",
					Description: "Text to find in the site's pages. Matching ignores case.",
				},
			},
			Required: []string{"query"},
		},
	}, t.call)
	return server
}

// New returns an HTTP handler that serves the MCP streamable HTTP transport.
func New(log *slog.Logger, version, apiKey string, searcher Searcher) http.Handler {
	server := NewServer(log, version, apiKey, searcher)
	return sdk.NewStreamableHTTPHandler(func(*http.Request) *sdk.Server { return server }, nil)
}

type tool struct {
	log      *slog.Logger
	apiKey   string
	searcher Searcher
}

func (t tool) call(ctx context.Context, req *sdk.CallToolRequest) (*sdk.CallToolResult, error) {
	if t.apiKey == "" {
		t.log.Error("NEOCITIES_API_KEY is not set")
		return errorResult(search.MessageMissingAPIKey), nil
	}

	var args models.SearchRequest
	if req.Params.Arguments != nil {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return errorResult("Invalid tool arguments."), nil
		}
	}

	results, stats, err := t.searcher.Search(ctx, args.Query)
	if err != nil {
		t.log.Error("mcp search failed", slog.Any("error", err))
		return errorResult(search.ErrorMessage(err)), nil
	}
	t.log.Info("mcp search complete",
		slog.Int("queryLength", len(args.Query)),
		slog.Int("files", stats.Files),
		slog.Int("matches", stats.Matches))

	text, err := json.Marshal(models.SearchResponse{Documents: results})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results: %w", err)
	}
	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: string(text)},
		},
	}, nil
}

func errorResult(msg string) *sdk.CallToolResult {
	return &sdk.CallToolResult{
		Content: []sdk.Content{
			&sdk.TextContent{Text: msg},
		},
		IsError: true,
	}
}
