package model

// Language is a short ISO 639-1 style language tag.
// It is detected exactly once per question and threaded through all
// downstream decisions of an answer cycle.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
	LanguageUnknown Language = "unknown"
)

func (l Language) String() string {
	return string(l)
}
