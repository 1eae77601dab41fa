// Package synth turns a question plus retrieved context into a grounded answer.
package synth

import (
	"context"

	"github.com/trivium-ai/trivium/model"
)

// Synthesizer generates an answer to a question from retrieved chunks.
// Implementations must instruct the model to say so explicitly when the
// context does not contain the answer, so that non-answer detection keeps
// working downstream.
type Synthesizer interface {
	Synthesize(ctx context.Context, question string, chunks model.ChunkList, language model.Language) (string, error)
}
