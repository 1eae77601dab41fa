package synth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/trivium-ai/trivium/model"
)

// OpenAISynthesizer implements Synthesizer using an OpenAI-compatible chat API.
type OpenAISynthesizer struct {
	client llms.Model
	logger *slog.Logger
}

// NewOpenAISynthesizer creates a synthesizer using the given chat model.
func NewOpenAISynthesizer(apiKey string, chatModel string) (*OpenAISynthesizer, error) {
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(chatModel),
	)
	if err != nil {
		return nil, err
	}

	return &OpenAISynthesizer{
		client: client,
		logger: slog.Default().With("component", "synthesizer"),
	}, nil
}

// Synthesize answers the question grounded in the retrieved chunks.
// The returned text is not guaranteed non-empty; callers evaluate it with
// non-answer detection before trusting it.
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, question string, chunks model.ChunkList, language model.Language) (string, error) {
	prompt := buildPrompt(question, chunks, language)
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := s.client.GenerateContent(ctx, content, llms.WithTemperature(0.0))
	if err != nil {
		s.logger.Error("failed to generate answer", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		s.logger.Debug("no choices returned from model")
		return "", nil
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
