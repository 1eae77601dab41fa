// Package classify contains the small decision helpers the retrieval cascade
// is built from: graph intent, document specificity, and non-answer detection.
package classify

import "github.com/trivium-ai/trivium/model"

// GraphIntent reports whether a question is graph-native, based on the
// entities extracted from it. Entity presence is a cheap, extractor-agnostic
// proxy for "this question is about a specific named thing"; it generalizes
// across languages where a keyword trigger list would not.
//
// Callers that also need the graph query target should extract once and pass
// the same entity list to both GraphIntent and GraphQueryTarget.
func GraphIntent(entities []*model.Entity) bool {
	return len(entities) > 0
}

// GraphQueryTarget returns the name of the first extracted entity, or an empty
// string if extraction yielded nothing. There is no ranking among entities;
// first-by-extraction-order wins.
func GraphQueryTarget(entities []*model.Entity) string {
	if len(entities) == 0 {
		return ""
	}
	return entities[0].Name
}
