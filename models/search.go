package models

type SearchRequest struct {
	// Query to match against the content of each HTML file.
	// An empty query returns no documents.
	Query string `json:"query"`
}

type SearchResponse struct {
	Documents []SearchResult `json:"documents"`
}

// SearchResult is the document shape expected by the calling assistant tool.
type SearchResult struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
