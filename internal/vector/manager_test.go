package vector

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

type fakeStore struct {
	added   map[string][]Document
	results []SearchResult
	err     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{added: make(map[string][]Document)}
}

func (f *fakeStore) Add(_ context.Context, collection string, docs []Document) error {
	if f.err != nil {
		return f.err
	}
	f.added[collection] = append(f.added[collection], docs...)
	return nil
}

func (f *fakeStore) Search(_ context.Context, _, _ string, _ int) ([]SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func TestDocumentManager_StoreProfile(t *testing.T) {
	store := newFakeStore()
	m := NewDocumentManager(store, zap.NewNop())

	profile := &types.Profile{
		Name:         "Tanaka",
		AppealPoints: "Ships reliable systems.",
		WorkExperiences: []types.WorkExperience{
			{CompanyName: "Acme", Position: "Engineer", Period: "2020-2023", Description: "Built tools."},
		},
	}
	m.StoreProfile(context.Background(), "s1", profile)

	docs := store.added[CollectionProfiles]
	require.NotEmpty(t, docs)
	assert.Contains(t, docs[0].Content, "Tanaka")
	assert.Equal(t, "s1", docs[0].Metadata["session_id"])
}

func TestDocumentManager_LongContentIsChunked(t *testing.T) {
	store := newFakeStore()
	m := NewDocumentManager(store, zap.NewNop())

	job := &types.JobRequirements{
		JobTitle:       "Backend Engineer",
		CompanyInfo:    types.CompanyInfo{Name: "Globex"},
		JobDescription: strings.Repeat("Design and operate Go services. ", 100),
	}
	m.StoreJobContext(context.Background(), "s1", job)

	docs := store.added[CollectionJobContext]
	assert.Greater(t, len(docs), 1)
	for _, doc := range docs {
		assert.Equal(t, "Backend Engineer", doc.Metadata["job_title"])
	}
}

func TestDocumentManager_StoreFailureIsAbsorbed(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("cluster down")
	m := NewDocumentManager(store, zap.NewNop())

	// Must not panic or surface the error.
	m.StoreAnalysis(context.Background(), "s1", "company-analysis", "analysis text")
}

func TestDocumentManager_RetrieveContext(t *testing.T) {
	store := newFakeStore()
	store.results = []SearchResult{
		{Content: "first match", Score: 2.0},
		{Content: "second match", Score: 1.5},
	}
	m := NewDocumentManager(store, zap.NewNop())

	got := m.RetrieveContext(context.Background(), CollectionAnalyses, "query", 5)
	assert.Equal(t, "first match\n\nsecond match", got)
}

func TestDocumentManager_RetrieveContextFailureReturnsEmpty(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("cluster down")
	m := NewDocumentManager(store, zap.NewNop())

	assert.Empty(t, m.RetrieveContext(context.Background(), CollectionAnalyses, "query", 5))
}

func TestDocumentManager_EmptyContentNotStored(t *testing.T) {
	store := newFakeStore()
	m := NewDocumentManager(store, zap.NewNop())

	m.StoreAnalysis(context.Background(), "s1", "company-analysis", "   ")
	assert.Empty(t, store.added[CollectionAnalyses])
}
