package integration

import (
	"context"
	"testing"

	"github.com/a-h/neosearch/client"
	healthget "github.com/a-h/neosearch/handlers/health/get"
	"github.com/google/go-cmp/cmp"
)

// These tests expect the server to be running on localhost:9020 with a
// NEOCITIES_API_KEY configured.

func TestHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New("http://localhost:9020", "")
	resp, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("failed to get health: %v", err)
	}
	if diff := cmp.Diff(healthget.Response, resp); diff != "" {
		t.Error(diff)
	}
}

func TestSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	c := client.New("http://localhost:9020", "")
	t.Run("empty queries return no documents", func(t *testing.T) {
		resp, err := c.Search(context.Background(), "")
		if err != nil {
			t.Fatalf("failed to search: %v", err)
		}
		if resp.Documents == nil || len(resp.Documents) != 0 {
			t.Errorf("expected empty documents, got %#v", resp.Documents)
		}
	})
	t.Run("every page contains an html tag", func(t *testing.T) {
		resp, err := c.Search(context.Background(), "<HTML")
		if err != nil {
			t.Fatalf("failed to search: %v", err)
		}
		for _, doc := range resp.Documents {
			if doc.Title != "Content from "+doc.ID {
				t.Errorf("unexpected title %q for %q", doc.Title, doc.ID)
			}
		}
	})
}
