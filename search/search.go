package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/neosearch/models"
	"github.com/a-h/neosearch/neocities"
)

// SnippetLength is the number of characters of a matching file returned as content.
const SnippetLength = 2000

// Site is the subset of the Neocities API used to search a site.
type Site interface {
	List(ctx context.Context) (neocities.ListResponse, error)
	Info(ctx context.Context) (neocities.InfoResponse, error)
	Content(ctx context.Context, sitename, path string) (string, error)
}

func New(site Site) Searcher {
	return Searcher{
		site: site,
	}
}

type Searcher struct {
	site Site
}

type Stats struct {
	Files    int
	Searched int
	Matches  int
}

// Search downloads each HTML file in turn, and returns the files that contain
// the query, ignoring case. Any failure aborts the search.
func (s Searcher) Search(ctx context.Context, query string) (results []models.SearchResult, stats Stats, err error) {
	results = []models.SearchResult{}
	if query == "" {
		return results, stats, nil
	}

	list, err := s.site.List(ctx)
	if err != nil {
		return nil, stats, err
	}
	stats.Files = len(list.Files)

	sitename := list.Info.Sitename
	if sitename == "" {
		info, err := s.site.Info(ctx)
		if err != nil {
			return nil, stats, fmt.Errorf("search: failed to get site name: %w", err)
		}
		sitename = info.Info.Sitename
	}

	q := strings.ToLower(query)
	for _, file := range list.Files {
		if !IsSearchable(file) {
			continue
		}
		if err = ctx.Err(); err != nil {
			return nil, stats, err
		}
		content, err := s.site.Content(ctx, sitename, file.Path)
		if err != nil {
			return nil, stats, fmt.Errorf("search: failed to get content of %q: %w", file.Path, err)
		}
		stats.Searched++
		if !strings.Contains(strings.ToLower(content), q) {
			continue
		}
		results = append(results, models.SearchResult{
			ID:      file.Path,
			Title:   "Content from " + file.Path,
			Content: Snippet(content),
		})
	}
	stats.Matches = len(results)

	return results, stats, nil
}

// IsSearchable returns true if the file is an HTML page.
func IsSearchable(file neocities.File) bool {
	return !file.IsDirectory && strings.HasSuffix(file.Path, ".html")
}

// Snippet returns the first SnippetLength characters of the content, followed by an ellipsis.
func Snippet(content string) string {
	var n int
	for i := range content {
		if n == SnippetLength {
			return content[:i] + "..."
		}
		n++
	}
	return content + "..."
}
