package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trivium-ai/trivium/model"
)

func TestNewGraphDBHandler(t *testing.T) {
	database := initDB(t)

	t.Run("Valid call NewGraphDBHandler", func(t *testing.T) {
		// Documents and chunks tables must exist first for the mention foreign key
		_, err := NewDocumentsDBHandler(database, true)
		require.NoError(t, err)
		_, err = NewVectorDBHandler(database, stubEmbedder(nil), testEmbeddingDim, model.DefaultQueryConfig(), true)
		require.NoError(t, err)

		graphDbHandler, err := NewGraphDBHandler(database, true)
		assert.NoError(t, err, "Expected NewGraphDBHandler to not return an error")
		require.NotNil(t, graphDbHandler)
		require.NotNil(t, graphDbHandler.db)
	})

	t.Run("Invalid call NewGraphDBHandler with nil database", func(t *testing.T) {
		_, err := NewGraphDBHandler(nil, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "database connection is nil")
	})
}

func TestGraphEntitiesAndMentions(t *testing.T) {
	database := initDB(t)

	documentsDbHandler, err := NewDocumentsDBHandler(database, true)
	require.NoError(t, err)
	vectorDbHandler, err := NewVectorDBHandler(database, stubEmbedder(nil), testEmbeddingDim, model.DefaultQueryConfig(), true)
	require.NoError(t, err)
	graphDbHandler, err := NewGraphDBHandler(database, true)
	require.NoError(t, err)

	doc := &model.Document{ID: "doc-graph-1", Title: "Graph Test"}
	require.NoError(t, documentsDbHandler.InsertDocument(doc))

	chunkA := &model.Chunk{DocumentID: "doc-graph-1", PageNumber: 1, ChunkID: "a", Text: "Marie Curie discovered radium.", Embedding: []float32{1, 0, 0, 0}}
	chunkB := &model.Chunk{DocumentID: "doc-graph-1", PageNumber: 2, ChunkID: "b", Text: "Curie won the Nobel prize twice.", Embedding: []float32{0, 1, 0, 0}}
	require.NoError(t, vectorDbHandler.InsertChunk(chunkA))
	require.NoError(t, vectorDbHandler.InsertChunk(chunkB))

	entity := &model.Entity{Name: "Marie Curie", Type: "PER"}

	t.Run("Insert entity assigns an id", func(t *testing.T) {
		err := graphDbHandler.InsertEntity(entity)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, entity.ID, "Expected inserted entity to have an ID")
	})

	t.Run("Insert with same name upserts", func(t *testing.T) {
		again := &model.Entity{Name: "Marie Curie", Type: "PERSON"}
		err := graphDbHandler.InsertEntity(again)
		assert.NoError(t, err)
		assert.Equal(t, entity.ID, again.ID, "Expected the same entity row")
		assert.Equal(t, "PERSON", again.Type)
	})

	t.Run("Link mentions and look up chunks by entity name", func(t *testing.T) {
		require.NoError(t, graphDbHandler.LinkMention(entity.ID, chunkA.ID))
		require.NoError(t, graphDbHandler.LinkMention(entity.ID, chunkB.ID))
		// Linking twice must not fail
		require.NoError(t, graphDbHandler.LinkMention(entity.ID, chunkA.ID))

		chunks, err := graphDbHandler.ChunksByEntity(context.Background(), "Marie Curie")
		require.NoError(t, err)
		require.Len(t, chunks, 2)
		assert.Equal(t, "a", chunks[0].ChunkID, "Expected chunks ordered by position")
		assert.Equal(t, "b", chunks[1].ChunkID)
	})

	t.Run("Unknown entity name yields empty list", func(t *testing.T) {
		chunks, err := graphDbHandler.ChunksByEntity(context.Background(), "Nobody Known")
		assert.NoError(t, err)
		assert.Empty(t, chunks)
	})

	t.Run("Empty entity name yields empty list without error", func(t *testing.T) {
		chunks, err := graphDbHandler.ChunksByEntity(context.Background(), "  ")
		assert.NoError(t, err)
		assert.Empty(t, chunks)
	})

	// Cleanup
	_ = documentsDbHandler.DeleteDocument("doc-graph-1")
}
