package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/trivium-ai/trivium/model"
)

const llmExtractionPromptTemplate = `You are a named entity extraction system.

Extract meaningful named entities from the following text.
Entities should be real-world concepts such as:
- people
- organizations
- places
- products
- laws
- languages
- events

Rules:
- Ignore generic words and abstract concepts
- Ignore numbers and measurements
- Do NOT hallucinate entities
- Preserve original language (do NOT translate)
- List entities in order of first appearance

Return ONLY valid JSON in the following format:
[
  {
    "name": "<entity text>",
    "entity_type": "<person|organization|location|product|event|law|language|other>"
  }
]

Text language: %s

Text:
"""%s"""`

// llmEntity is an internal type used for JSON unmarshaling.
// It matches the structure the model is asked to return.
type llmEntity struct {
	Name       string `json:"name"`
	EntityType string `json:"entity_type"`
}

// LLMExtractor extracts entities with a chat model. It handles any language
// and is the general path for everything the NER model does not cover.
type LLMExtractor struct {
	client llms.Model
	logger *slog.Logger
}

// NewLLMExtractor creates an LLM-backed entity extractor using an
// OpenAI-compatible chat API.
func NewLLMExtractor(apiKey string, chatModel string) (*LLMExtractor, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(chatModel),
	)
	if err != nil {
		return nil, err
	}

	return &LLMExtractor{
		client: client,
		logger: slog.Default().With("component", "llm-extractor"),
	}, nil
}

// Extract asks the model for entities and normalizes them to the shared schema.
// A response with no entities yields an empty list, not an error.
func (e *LLMExtractor) Extract(ctx context.Context, text string, language model.Language) ([]*model.Entity, error) {
	prompt := fmt.Sprintf(llmExtractionPromptTemplate, language, text)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var parsed []llmEntity
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
		if err != nil {
			return nil, fmt.Errorf("entity extraction failed: %w", err)
		}

		if len(response.Choices) < 1 {
			e.logger.Debug("no choices returned from model")
			return nil, nil
		}

		responseText := stripCodeFences(response.Choices[0].Content)

		if err := json.Unmarshal([]byte(responseText), &parsed); err != nil {
			lastErr = err
			e.logger.Warn("error parsing extraction response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	// Persistent malformed output means "no entity signal", not a failed
	// answer cycle: the question degrades to the general branch instead of
	// aborting. Transport errors above still propagate.
	if lastErr != nil {
		e.logger.Warn("giving up on extraction after retries", "err", lastErr)
		return nil, nil
	}

	entities := make([]*model.Entity, 0, len(parsed))
	for _, p := range parsed {
		name := NormalizeEntityName(p.Name)
		if name == "" {
			continue
		}

		entityType := p.EntityType
		if entityType == "" {
			entityType = "unknown"
		}

		entities = append(entities, &model.Entity{
			ID:          uuid.New(),
			Name:        name,
			Type:        entityType,
			SourceLabel: "LLM",
			Language:    language,
		})
	}

	return entities, nil
}

// stripCodeFences removes markdown code fences the model sometimes wraps
// its JSON in.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
