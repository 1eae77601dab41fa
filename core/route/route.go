// Package route implements the knowledge source cascade: given a question,
// it decides which of the graph store, the vector store, and the open web to
// consult, in what order, and commits to exactly one answer with provenance.
package route

import (
	"context"

	"github.com/trivium-ai/trivium/model"
)

// GraphSource answers structured entity lookups against the graph store.
// An empty or unresolvable entity name must yield an empty list, not an error.
type GraphSource interface {
	ChunksByEntity(ctx context.Context, entityName string) (model.ChunkList, error)
}

// VectorSource answers semantic similarity lookups against the vector store.
// Returned chunks must carry populated identity fields; no ordering is
// assumed, the cascade relies on deduplication only.
type VectorSource interface {
	SimilarChunks(ctx context.Context, question string, language model.Language) (model.ChunkList, error)
}

// WebSource answers open-web searches, ordered by relevance.
type WebSource interface {
	Search(ctx context.Context, question string) (*model.WebResult, error)
}
