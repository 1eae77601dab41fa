package extract

import (
	"context"

	"github.com/trivium-ai/trivium/model"
)

// SmartExtractor routes extraction to the best extractor for the detected
// language: the local NER model for English (fast, cheap), the LLM for Arabic
// and everything else.
type SmartExtractor struct {
	ner Extractor
	llm Extractor
}

// NewSmartExtractor creates a language-routing extractor. The NER extractor
// may be nil, in which case all languages go through the LLM extractor.
func NewSmartExtractor(ner Extractor, llm Extractor) *SmartExtractor {
	// A nil *NERExtractor arriving wrapped in the interface is still "no NER";
	// without this check the nil guard in Extract would pass and the English
	// path would call into a nil receiver.
	if n, ok := ner.(*NERExtractor); ok && n == nil {
		ner = nil
	}
	return &SmartExtractor{
		ner: ner,
		llm: llm,
	}
}

// Extract routes to the language-appropriate extractor.
func (e *SmartExtractor) Extract(ctx context.Context, text string, language model.Language) ([]*model.Entity, error) {
	if language == model.LanguageEnglish && e.ner != nil {
		return e.ner.Extract(ctx, text, language)
	}
	return e.llm.Extract(ctx, text, language)
}
