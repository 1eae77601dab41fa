package lang

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/trivium-ai/trivium/model"
)

// Detector detects the working language of a text.
// Implementations must be deterministic: the same text always yields the same
// tag, because all branches of an answer cycle assume a consistent language.
type Detector interface {
	Detect(text string) model.Language
}

// LinguaDetector detects languages using statistical n-gram models.
// Detection failure never aborts the answering flow; it yields
// model.LanguageUnknown instead.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector creates a detector restricted to the languages the system
// carries prompts for, plus common neighbors to keep detection honest.
func NewLinguaDetector() *LinguaDetector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Arabic,
		lingua.French,
		lingua.German,
		lingua.Spanish,
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		WithPreloadedLanguageModels().
		Build()

	return &LinguaDetector{detector: detector}
}

// Detect returns the ISO 639-1 code of the detected language, or
// model.LanguageUnknown if the text is empty or no language can be determined.
func (d *LinguaDetector) Detect(text string) model.Language {
	if strings.TrimSpace(text) == "" {
		return model.LanguageUnknown
	}

	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return model.LanguageUnknown
	}

	return model.Language(strings.ToLower(language.IsoCode639_1().String()))
}
