package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"github.com/trivium-ai/trivium/helper"
	"github.com/trivium-ai/trivium/model"
)

// NERExtractor extracts entities with a local token classification model.
// It is the fast path for English questions; other languages go through
// the LLM extractor, which handles them better.
type NERExtractor struct {
	session  *hugot.Session
	pipeline *pipelines.TokenClassificationPipeline
}

// NewNERExtractor creates an entity extractor using a NER model.
// Uses distilbert-NER for named entity recognition.
// Detects: PERSON, ORGANIZATION, LOCATION, MISC entities.
func NewNERExtractor() (*NERExtractor, error) {
	// Prepare model (download if needed)
	// Using KnightsAnalytics optimized distilbert-NER model
	modelName := "KnightsAnalytics/distilbert-NER"
	modelPath, err := helper.PrepareModel(modelName, "model.onnx")
	if err != nil {
		return nil, err
	}

	// Initialize hugot session with Go backend
	session, err := hugot.NewGoSession()
	if err != nil {
		return nil, fmt.Errorf("failed to create hugot session: %w", err)
	}

	// Create token classification pipeline for NER
	config := hugot.TokenClassificationConfig{
		ModelPath: modelPath,
		Name:      "ner-pipeline",
		Options: []hugot.TokenClassificationOption{
			pipelines.WithSimpleAggregation(),
			pipelines.WithIgnoreLabels([]string{"O"}), // Ignore non-entity tokens
		},
	}
	nerPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		if destroyErr := session.Destroy(); destroyErr != nil {
			return nil, fmt.Errorf("failed to create NER pipeline: %w (cleanup error: %v)", err, destroyErr)
		}
		return nil, fmt.Errorf("failed to create NER pipeline: %w", err)
	}

	return &NERExtractor{
		session:  session,
		pipeline: nerPipeline,
	}, nil
}

// Extract runs NER on the text and returns validated, deduplicated entities
// in order of first appearance.
func (e *NERExtractor) Extract(ctx context.Context, text string, language model.Language) ([]*model.Entity, error) {
	result, err := e.pipeline.RunPipeline([]string{text})
	if err != nil {
		return nil, fmt.Errorf("failed to run NER: %w", err)
	}

	if len(result.Entities) == 0 {
		return nil, nil
	}

	var entities []*model.Entity
	seen := make(map[string]bool)
	for _, entity := range result.Entities[0] {
		name := NormalizeEntityName(entity.Word)
		// Normalize entity type (remove B- and I- prefixes)
		label := normalizeEntityLabel(entity.Entity)

		if !IsValidEntity(name, label) {
			continue
		}

		// De-duplicate within the text, keeping first appearance
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		entities = append(entities, &model.Entity{
			ID:          uuid.New(),
			Name:        name,
			Type:        "unknown",
			SourceLabel: label,
			Language:    language,
			Metadata: map[string]interface{}{
				"confidence": entity.Score,
				"start":      entity.Start,
				"end":        entity.End,
			},
		})
	}

	return entities, nil
}

// Close releases the underlying model session.
func (e *NERExtractor) Close() error {
	return e.session.Destroy()
}

// normalizeEntityLabel removes B- and I- prefixes from NER labels
func normalizeEntityLabel(label string) string {
	// Remove BIO tagging prefixes (B- for beginning, I- for inside)
	if strings.HasPrefix(label, "B-") {
		return label[2:]
	}
	if strings.HasPrefix(label, "I-") {
		return label[2:]
	}
	return label
}
