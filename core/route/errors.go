package route

import "errors"

var (
	// ErrNoAnswer is returned when the cascade exhausts every eligible source
	// without producing an answer. This happens for Arabic document-specific
	// questions where web fallback is deliberately gated off.
	ErrNoAnswer = errors.New("no answer available from any eligible knowledge source")

	// ErrNoResults is returned when the web source responds with zero organic
	// results, leaving nothing to answer from.
	ErrNoResults = errors.New("web search returned no results")
)
