package model

import "time"

// Document represents an ingested document's metadata.
// The ID is a content hash assigned by the ingestion pipeline.
type Document struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source,omitempty"`
	Metadata  Metadata  `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
