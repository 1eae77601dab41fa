package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trivium-ai/trivium/model"
)

func chunk(doc string, page int, id string, text string) *model.Chunk {
	return &model.Chunk{
		DocumentID: doc,
		PageNumber: page,
		ChunkID:    id,
		Text:       text,
	}
}

func TestDedupeChunks(t *testing.T) {
	t.Run("Removes duplicates keeping first occurrence", func(t *testing.T) {
		chunks := model.ChunkList{
			chunk("doc1", 1, "c1", "first"),
			chunk("doc1", 2, "c1", "second"),
			chunk("doc1", 1, "c1", "duplicate of first"),
			chunk("doc2", 1, "c1", "third"),
		}

		unique := DedupeChunks(chunks)

		assert.Len(t, unique, 3)
		assert.Equal(t, "first", unique[0].Text, "Expected first occurrence to survive")
		assert.Equal(t, "second", unique[1].Text)
		assert.Equal(t, "third", unique[2].Text)
	})

	t.Run("Identity is the full key, not text", func(t *testing.T) {
		chunks := model.ChunkList{
			chunk("doc1", 1, "c1", "same text"),
			chunk("doc1", 1, "c2", "same text"),
		}

		unique := DedupeChunks(chunks)

		assert.Len(t, unique, 2, "Expected chunks differing only in chunk id to both survive")
	})

	t.Run("Idempotent", func(t *testing.T) {
		chunks := model.ChunkList{
			chunk("doc1", 1, "c1", "a"),
			chunk("doc1", 1, "c1", "a"),
			chunk("doc1", 2, "c2", "b"),
		}

		once := DedupeChunks(chunks)
		twice := DedupeChunks(once)

		assert.Equal(t, once, twice)
	})

	t.Run("Empty and nil input", func(t *testing.T) {
		assert.Empty(t, DedupeChunks(nil))
		assert.Empty(t, DedupeChunks(model.ChunkList{}))
	})
}
