package synth

import (
	"fmt"
	"strings"

	"github.com/trivium-ai/trivium/model"
)

const englishPromptTemplate = `You are a knowledge assistant.
Answer the question strictly using the provided context.
If the answer cannot be found in the context, say so explicitly.

Context:
%s

Question:
%s

Answer:`

const arabicPromptTemplate = `أنت مساعد يعتمد فقط على النص المقدم أدناه.
أجب عن السؤال باستخدام نفس الألفاظ الواردة في النص.
إذا كان السؤال عن عنوان الوثيقة، فاذكر العنوان حرفياً كما ورد.

إذا لم تجد الإجابة في النص، قل بوضوح: "لا يرد العنوان في النص".

السياق:
%s

السؤال:
%s

الإجابة:`

// buildContext renders the retrieved chunks as a provenance-tagged context block.
func buildContext(chunks model.ChunkList) string {
	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = fmt.Sprintf("[Doc %s | Page %d | Chunk %s]\n%s", c.DocumentID, c.PageNumber, c.ChunkID, c.Text)
	}
	return strings.Join(parts, "\n\n")
}

// buildPrompt selects the language-appropriate prompt template and fills in
// the context and question. Arabic gets its own template; everything else
// uses the English one.
func buildPrompt(question string, chunks model.ChunkList, language model.Language) string {
	context := buildContext(chunks)

	if language == model.LanguageArabic {
		return fmt.Sprintf(arabicPromptTemplate, context, question)
	}
	return fmt.Sprintf(englishPromptTemplate, context, question)
}
