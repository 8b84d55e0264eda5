package main

import (
	"context"
	"fmt"

	"github.com/a-h/neosearch/client"
)

type HealthCommand struct {
	ServerURL    string `help:"The URL of the search server." env:"NEOSEARCH_URL" default:"http://localhost:9020"`
	ServerAPIKey string `help:"The API key for the search server." env:"NEOSEARCH_API_KEY" default:""`
}

func (c HealthCommand) Run(ctx context.Context) (err error) {
	resp, err := client.New(c.ServerURL, c.ServerAPIKey).Health(ctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	fmt.Printf("%s: %s\n", resp.Service, resp.Status)
	return nil
}
