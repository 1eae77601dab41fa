package classify

import "strings"

// documentTriggers are Arabic phrases that refer to an ingested document
// itself ("this report", "this document", "the chapter", "the appendix").
// A question containing one of these is scoped to internal content and must
// not spill to open-web search.
var documentTriggers = []string{
	"هذا التقرير",
	"هذه الوثيقة",
	"في هذا التقرير",
	"عنوان التقرير",
	"الفصل",
	"الملحق",
}

// DocumentSpecific reports whether a question refers to an ingested document's
// own content. Only meaningful for Arabic questions; the cascade evaluates it
// solely to gate web fallback on that branch.
func DocumentSpecific(question string) bool {
	for _, t := range documentTriggers {
		if strings.Contains(question, t) {
			return true
		}
	}
	return false
}
