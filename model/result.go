package model

// Knowledge identifies which knowledge source ultimately produced an answer.
// It is part of the caller-facing contract and must be surfaced to the end user.
type Knowledge string

const (
	KnowledgeGraph          Knowledge = "internal (graph)"
	KnowledgeVector         Knowledge = "internal (vector)"
	KnowledgeVectorFallback Knowledge = "internal (vector-fallback)"
	KnowledgeOnline         Knowledge = "online"
)

// Sources is the provenance payload of a Result. It is either a ChunkList
// (internal knowledge) or an ExternalLink (online knowledge), correlated with
// the Knowledge tag.
type Sources interface {
	isSources()
}

// ChunkList is a list of retrieved chunks used as grounding context.
type ChunkList []*Chunk

func (ChunkList) isSources() {}

// ExternalLink is the URL of an external search result.
type ExternalLink string

func (ExternalLink) isSources() {}

// Result is the final output of an answer cascade.
type Result struct {
	Answer    string    `json:"answer"`
	Sources   Sources   `json:"sources,omitempty"`
	Knowledge Knowledge `json:"knowledge"`
}
