package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
)

// ElasticStore implements Store on Elasticsearch. Each collection maps to an
// index named indexPrefix-collection; relevance comes from a match query over
// the content field.
type ElasticStore struct {
	client      *elasticsearch.Client
	indexPrefix string
}

// NewElasticStore creates a store against the given cluster addresses and
// verifies the connection.
func NewElasticStore(ctx context.Context, addresses []string, indexPrefix string) (*ElasticStore, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}

	res, err := client.Ping(client.Ping.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("elasticsearch ping failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch ping error: %s", res.Status())
	}

	if indexPrefix == "" {
		indexPrefix = "resume-ai"
	}
	return &ElasticStore{client: client, indexPrefix: indexPrefix}, nil
}

func (s *ElasticStore) indexName(collection string) string {
	return fmt.Sprintf("%s-%s", s.indexPrefix, strings.ToLower(collection))
}

// Add indexes the documents. Documents without an ID get a generated one.
func (s *ElasticStore) Add(ctx context.Context, collection string, docs []Document) error {
	index := s.indexName(collection)
	for _, doc := range docs {
		id := doc.ID
		if id == "" {
			id = uuid.NewString()
		}

		body, err := json.Marshal(map[string]any{
			"content":  doc.Content,
			"metadata": doc.Metadata,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal document: %w", err)
		}

		res, err := s.client.Index(
			index,
			bytes.NewReader(body),
			s.client.Index.WithDocumentID(id),
			s.client.Index.WithContext(ctx),
		)
		if err != nil {
			return fmt.Errorf("failed to index document: %w", err)
		}
		res.Body.Close()
		if res.IsError() {
			return fmt.Errorf("failed to index document: %s", res.Status())
		}
	}
	return nil
}

// Search runs a match query over the content field and returns the top hits.
func (s *ElasticStore) Search(ctx context.Context, collection, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}

	body, err := json.Marshal(map[string]any{
		"size": limit,
		"query": map[string]any{
			"match": map[string]any{
				"content": query,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.indexName(collection)),
		s.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		// Collection has never been written to.
		return nil, nil
	}
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Score  float64 `json:"_score"`
				Source struct {
					Content  string            `json:"content"`
					Metadata map[string]string `json:"metadata"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	results := make([]SearchResult, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		results = append(results, SearchResult{
			Content:  hit.Source.Content,
			Metadata: hit.Source.Metadata,
			Score:    hit.Score,
		})
	}
	return results, nil
}
