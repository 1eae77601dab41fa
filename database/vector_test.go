package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trivium-ai/trivium/core/embed"
	"github.com/trivium-ai/trivium/model"
)

const testEmbeddingDim = 4

// stubEmbedder maps known texts to fixed orthogonal vectors so similarity
// ranking in tests is exact.
func stubEmbedder(vectors map[string][]float32) embed.Func {
	return func(ctx context.Context, text string) ([]float32, error) {
		if v, ok := vectors[text]; ok {
			return v, nil
		}
		return []float32{1, 0, 0, 0}, nil
	}
}

func TestNewVectorDBHandler(t *testing.T) {
	database := initDB(t)

	t.Run("Valid call NewVectorDBHandler", func(t *testing.T) {
		_, err := NewDocumentsDBHandler(database, true)
		require.NoError(t, err, "Expected NewDocumentsDBHandler to not return an error")

		vectorDbHandler, err := NewVectorDBHandler(database, stubEmbedder(nil), testEmbeddingDim, model.DefaultQueryConfig(), true)
		assert.NoError(t, err, "Expected NewVectorDBHandler to not return an error")
		require.NotNil(t, vectorDbHandler)
		require.NotNil(t, vectorDbHandler.db)
	})

	t.Run("Invalid call NewVectorDBHandler with nil database", func(t *testing.T) {
		_, err := NewVectorDBHandler(nil, stubEmbedder(nil), testEmbeddingDim, model.DefaultQueryConfig(), false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})

	t.Run("Invalid call NewVectorDBHandler with nil embedder", func(t *testing.T) {
		_, err := NewVectorDBHandler(database, nil, testEmbeddingDim, model.DefaultQueryConfig(), false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "embedder is nil")
	})
}

func TestVectorInsertAndDelete(t *testing.T) {
	database := initDB(t)

	documentsDbHandler, err := NewDocumentsDBHandler(database, true)
	require.NoError(t, err)

	vectorDbHandler, err := NewVectorDBHandler(database, stubEmbedder(nil), testEmbeddingDim, model.DefaultQueryConfig(), true)
	require.NoError(t, err)

	doc := &model.Document{ID: "doc-vec-1", Title: "Vector Test"}
	require.NoError(t, documentsDbHandler.InsertDocument(doc))

	t.Run("Insert chunk", func(t *testing.T) {
		chunk := &model.Chunk{
			DocumentID: "doc-vec-1",
			PageNumber: 1,
			ChunkID:    "c1",
			Text:       "Water boils at 100 degrees Celsius.",
			Language:   model.LanguageEnglish,
			Embedding:  []float32{1, 0, 0, 0},
		}

		err := vectorDbHandler.InsertChunk(chunk)
		assert.NoError(t, err)
		assert.NotZero(t, chunk.ID, "Expected inserted chunk to have an ID")
		assert.WithinDuration(t, chunk.CreatedAt, time.Now(), 2*time.Second)
	})

	t.Run("Insert with same identity key updates", func(t *testing.T) {
		chunk := &model.Chunk{
			DocumentID: "doc-vec-1",
			PageNumber: 1,
			ChunkID:    "c1",
			Text:       "Water boils at 100 degrees Celsius at sea level.",
			Language:   model.LanguageEnglish,
			Embedding:  []float32{1, 0, 0, 0},
		}

		err := vectorDbHandler.InsertChunk(chunk)
		assert.NoError(t, err)

		var count int
		err = database.Instance.QueryRow(
			`SELECT COUNT(*) FROM chunks WHERE document_id = $1 AND page_number = 1 AND chunk_id = 'c1'`,
			"doc-vec-1",
		).Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "Expected upsert, not a second row")
	})

	t.Run("Delete chunk", func(t *testing.T) {
		chunk := &model.Chunk{
			DocumentID: "doc-vec-1",
			PageNumber: 2,
			ChunkID:    "c2",
			Text:       "Something deletable.",
			Embedding:  []float32{0, 1, 0, 0},
		}
		require.NoError(t, vectorDbHandler.InsertChunk(chunk))

		err := vectorDbHandler.DeleteChunk(chunk.ID)
		assert.NoError(t, err)
	})

	// Cleanup
	_ = documentsDbHandler.DeleteDocument("doc-vec-1")
}

func TestVectorSimilarChunks(t *testing.T) {
	database := initDB(t)

	documentsDbHandler, err := NewDocumentsDBHandler(database, true)
	require.NoError(t, err)

	embedder := stubEmbedder(map[string][]float32{
		"about boiling":  {1, 0, 0, 0},
		"about freezing": {0, 1, 0, 0},
	})

	config := model.QueryConfig{TopK: 5, SimilarityThreshold: 0.5}
	vectorDbHandler, err := NewVectorDBHandler(database, embedder, testEmbeddingDim, config, true)
	require.NoError(t, err)

	doc := &model.Document{ID: "doc-sim-1", Title: "Similarity Test"}
	require.NoError(t, documentsDbHandler.InsertDocument(doc))

	chunks := []*model.Chunk{
		{DocumentID: "doc-sim-1", PageNumber: 1, ChunkID: "boil", Text: "Water boils at 100C.", Language: model.LanguageEnglish, Embedding: []float32{1, 0, 0, 0}},
		{DocumentID: "doc-sim-1", PageNumber: 1, ChunkID: "freeze", Text: "Water freezes at 0C.", Language: model.LanguageEnglish, Embedding: []float32{0, 1, 0, 0}},
		{DocumentID: "doc-sim-1", PageNumber: 2, ChunkID: "other", Text: "Unrelated passage.", Language: model.LanguageArabic, Embedding: []float32{0, 0, 1, 0}},
	}
	for _, c := range chunks {
		require.NoError(t, vectorDbHandler.InsertChunk(c))
	}

	t.Run("Returns the most similar chunk above threshold", func(t *testing.T) {
		hits, err := vectorDbHandler.SimilarChunks(context.Background(), "about boiling", model.LanguageEnglish)
		require.NoError(t, err)
		require.Len(t, hits, 1, "Expected orthogonal chunks to be filtered by threshold")
		assert.Equal(t, "boil", hits[0].ChunkID)
		assert.InDelta(t, 1.0, hits[0].Similarity, 0.001)
	})

	t.Run("Threshold zero returns up to top k ranked", func(t *testing.T) {
		open := model.QueryConfig{TopK: 2, SimilarityThreshold: 0.0}
		openHandler, err := NewVectorDBHandler(database, embedder, testEmbeddingDim, open, false)
		require.NoError(t, err)

		hits, err := openHandler.SimilarChunks(context.Background(), "about freezing", model.LanguageEnglish)
		require.NoError(t, err)
		require.Len(t, hits, 2)
		assert.Equal(t, "freeze", hits[0].ChunkID, "Expected the closest chunk first")
	})

	t.Run("Question language is the fallback filter", func(t *testing.T) {
		open := model.QueryConfig{TopK: 5, SimilarityThreshold: 0.0}
		openHandler, err := NewVectorDBHandler(database, embedder, testEmbeddingDim, open, false)
		require.NoError(t, err)

		hits, err := openHandler.SimilarChunks(context.Background(), "about boiling", model.LanguageArabic)
		require.NoError(t, err)
		require.Len(t, hits, 1, "Expected only Arabic chunks for an Arabic question")
		assert.Equal(t, "other", hits[0].ChunkID)
	})

	t.Run("Unknown language applies no filter", func(t *testing.T) {
		open := model.QueryConfig{TopK: 5, SimilarityThreshold: 0.0}
		openHandler, err := NewVectorDBHandler(database, embedder, testEmbeddingDim, open, false)
		require.NoError(t, err)

		hits, err := openHandler.SimilarChunks(context.Background(), "about boiling", model.LanguageUnknown)
		require.NoError(t, err)
		assert.Len(t, hits, 3, "Expected all chunks regardless of language")
	})

	t.Run("Language filter restricts results", func(t *testing.T) {
		filtered := model.QueryConfig{TopK: 5, SimilarityThreshold: 0.0, Language: model.LanguageArabic}
		filteredHandler, err := NewVectorDBHandler(database, embedder, testEmbeddingDim, filtered, false)
		require.NoError(t, err)

		hits, err := filteredHandler.SimilarChunks(context.Background(), "about boiling", model.LanguageArabic)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, "other", hits[0].ChunkID)
	})

	// Cleanup
	_ = documentsDbHandler.DeleteDocument("doc-sim-1")
}
