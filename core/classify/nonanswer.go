package classify

import "strings"

// nonAnswerTriggers are the canned "insufficient context" phrasings the
// synthesis prompt instructs the model to emit when grounding fails.
// Detection is a plain case-insensitive substring match; the cascade depends
// on this trigger list staying inspectable, so it must not be replaced by a
// semantic classifier.
var nonAnswerTriggers = []string{
	"does not contain information",
	"cannot be found in the context",
	"not mentioned in the context",
	"no information provided",
}

// NonAnswer reports whether a synthesized answer asserts that no information
// was found, regardless of which source produced it.
func NonAnswer(text string) bool {
	lower := strings.ToLower(text)
	for _, t := range nonAnswerTriggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}
