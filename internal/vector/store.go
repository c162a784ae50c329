// Package vector stores generation context as searchable documents so past
// analyses and form submissions can be retrieved as additional prompt context.
package vector

import "context"

// Document is one stored chunk with its metadata.
type Document struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// SearchResult is one retrieved document with its relevance score.
type SearchResult struct {
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Score    float64           `json:"score"`
}

// Store is a named-collection document store with relevance search.
type Store interface {
	// Add indexes documents into the named collection.
	Add(ctx context.Context, collection string, docs []Document) error
	// Search returns up to limit documents from the collection ranked by
	// relevance to the query.
	Search(ctx context.Context, collection, query string, limit int) ([]SearchResult, error)
}
