package route

import "github.com/trivium-ai/trivium/model"

// queryContext carries the per-question classification decisions.
// It is computed exactly once at the start of an answer cycle and passed down;
// no branch re-detects language or re-extracts entities mid-cascade.
type queryContext struct {
	Language         model.Language
	DocumentSpecific bool
	GraphIntent      bool
	Entities         []*model.Entity
}
