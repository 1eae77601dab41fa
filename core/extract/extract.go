package extract

import (
	"context"

	"github.com/trivium-ai/trivium/model"
)

// Extractor extracts named entities from text.
// An empty result means "no entity signal"; it is not an error.
// Entities must be returned in order of first appearance, since the first
// entity determines the graph query target.
type Extractor interface {
	Extract(ctx context.Context, text string, language model.Language) ([]*model.Entity, error)
}
