package model

import "time"

// Chunk represents a retrieved passage from an ingested document.
// Two chunks refer to the same passage iff their Key matches, regardless of text.
type Chunk struct {
	ID         int       `json:"-"`
	DocumentID string    `json:"document_id"`
	PageNumber int       `json:"page_number"`
	ChunkID    string    `json:"chunk_id"`
	Text       string    `json:"text"`
	Language   Language  `json:"language,omitempty"`
	Embedding  []float32 `json:"-"`
	CreatedAt  time.Time `json:"-"`
	// Results
	Similarity float64 `json:"similarity,omitempty"`
}

// ChunkKey is the identity key of a chunk.
type ChunkKey struct {
	DocumentID string
	PageNumber int
	ChunkID    string
}

// Key returns the identity key of the chunk.
func (c *Chunk) Key() ChunkKey {
	return ChunkKey{
		DocumentID: c.DocumentID,
		PageNumber: c.PageNumber,
		ChunkID:    c.ChunkID,
	}
}
