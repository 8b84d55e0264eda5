package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/a-h/neosearch/client"
	"github.com/a-h/neosearch/models"
	"gopkg.in/yaml.v3"
)

type SearchCommand struct {
	ServerURL    string `help:"The URL of the search server." env:"NEOSEARCH_URL" default:"http://localhost:9020"`
	ServerAPIKey string `help:"The API key for the search server." env:"NEOSEARCH_API_KEY" default:""`
	Query        string `arg:"" help:"The text to search for."`
	Format       string `help:"The output format." enum:"json,yaml" default:"json"`
	Pretty       bool   `help:"Pretty print the JSON output." default:"true"`
}

func (c SearchCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL, c.ServerAPIKey).Search(ctx, c.Query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return writeResponse(os.Stdout, resp, c.Format, c.Pretty)
}

func writeResponse(w io.Writer, resp models.SearchResponse, format string, pretty bool) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(resp)
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(resp)
}
