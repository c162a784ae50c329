package vector

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/urabe-chihiro/resume-ai/internal/types"
)

// Collection names used by the manager.
const (
	CollectionProfiles   = "profiles"
	CollectionJobContext = "job-context"
	CollectionAnalyses   = "analyses"
)

// DocumentManager stores and retrieves generation context. All operations are
// best-effort: storage failures are logged and absorbed so the pipeline never
// depends on the search cluster being up.
type DocumentManager struct {
	store  Store
	logger *zap.Logger
}

// NewDocumentManager wraps a store. A nil logger is replaced with a no-op
// logger.
func NewDocumentManager(store Store, logger *zap.Logger) *DocumentManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentManager{store: store, logger: logger}
}

func (m *DocumentManager) add(ctx context.Context, collection, content string, metadata map[string]string) {
	chunks := ChunkText(content, defaultChunkSize, defaultChunkOverlap)
	if len(chunks) == 0 {
		return
	}

	docs := make([]Document, 0, len(chunks))
	for _, chunk := range chunks {
		docs = append(docs, Document{Content: chunk, Metadata: metadata})
	}
	if err := m.store.Add(ctx, collection, docs); err != nil {
		m.logger.Warn("failed to store context documents",
			zap.String("collection", collection), zap.Error(err))
	}
}

// StoreProfile indexes the profile text for later retrieval.
func (m *DocumentManager) StoreProfile(ctx context.Context, sessionID string, profile *types.Profile) {
	m.add(ctx, CollectionProfiles, profileText(profile), map[string]string{
		"session_id": sessionID,
		"name":       profile.Name,
	})
}

// StoreJobContext indexes the job posting text.
func (m *DocumentManager) StoreJobContext(ctx context.Context, sessionID string, job *types.JobRequirements) {
	m.add(ctx, CollectionJobContext, job.JobDescription, map[string]string{
		"session_id": sessionID,
		"job_title":  job.JobTitle,
		"company":    job.CompanyInfo.Name,
	})
}

// StoreAnalysis indexes a pipeline analysis output under its stage name.
func (m *DocumentManager) StoreAnalysis(ctx context.Context, sessionID, stage, analysis string) {
	m.add(ctx, CollectionAnalyses, analysis, map[string]string{
		"session_id": sessionID,
		"stage":      stage,
	})
}

// RetrieveContext searches a collection and returns the matching content
// joined into one prompt-ready block. Failures return an empty string.
func (m *DocumentManager) RetrieveContext(ctx context.Context, collection, query string, limit int) string {
	results, err := m.store.Search(ctx, collection, query, limit)
	if err != nil {
		m.logger.Warn("context retrieval failed",
			zap.String("collection", collection), zap.Error(err))
		return ""
	}
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		parts = append(parts, r.Content)
	}
	return strings.Join(parts, "\n\n")
}

func profileText(profile *types.Profile) string {
	var parts []string
	parts = append(parts, profile.Name)
	if profile.AppealPoints != "" {
		parts = append(parts, profile.AppealPoints)
	}
	for _, exp := range profile.WorkExperiences {
		parts = append(parts, exp.CompanyName+" "+exp.Position+" "+exp.Description)
	}
	for _, proj := range profile.PersonalProjects {
		parts = append(parts, proj.Title+" "+proj.Description)
	}
	return strings.Join(parts, "\n")
}
