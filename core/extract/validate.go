package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// signalKeywords are generic measurement/control terms that NER models tend to
// tag as entities in technical documents; they carry no entity signal.
var signalKeywords = []string{
	"velocity",
	"length",
	"length error",
	"force",
	"feedback",
	"bias",
	"signal",
	"control",
	"error",
}

// blockedLabels are NER labels that never denote a graph-worthy entity.
var blockedLabels = map[string]bool{
	"CARDINAL": true,
	"ORDINAL":  true,
	"QUANTITY": true,
	"PERCENT":  true,
}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// NormalizeEntityName trims and collapses whitespace in an entity name.
func NormalizeEntityName(name string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(name), " ")
}

// IsValidEntity reports whether a normalized entity name with the given NER
// label should be kept. Unknown labels are allowed; obviously bad ones are not.
func IsValidEntity(name string, label string) bool {
	n := strings.ToLower(name)

	if len(n) < 4 {
		return false
	}

	for _, k := range signalKeywords {
		if strings.Contains(n, k) {
			return false
		}
	}

	if isNumeric(n) {
		return false
	}

	if blockedLabels[label] {
		return false
	}

	return true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
