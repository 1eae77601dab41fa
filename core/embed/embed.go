// Package embed provides query-side text embeddings for vector search.
package embed

import (
	"context"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Func is a function that generates an embedding for a text.
type Func func(ctx context.Context, text string) ([]float32, error)

// NewOpenAIEmbedder creates an embedding function backed by an
// OpenAI-compatible embeddings API.
func NewOpenAIEmbedder(apiKey string, embeddingModel string) (Func, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithEmbeddingModel(embeddingModel),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, text string) ([]float32, error) {
		vectors, err := embedder.EmbedDocuments(ctx, []string{text})
		if err != nil {
			return nil, err
		}
		if len(vectors) == 0 {
			return []float32{}, nil
		}
		return vectors[0], nil
	}, nil
}
