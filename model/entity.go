package model

import "github.com/google/uuid"

// Entity represents a named entity extracted from a question or chunk.
// Only Name is required by the retrieval cascade; the first entity of an
// extraction result determines the graph query target, so extractors must
// return entities in order of first appearance.
type Entity struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"entity_type"`
	SourceLabel string    `json:"source_label"`
	Language    Language  `json:"language,omitempty"`
	Metadata    Metadata  `json:"metadata,omitempty"`
}
