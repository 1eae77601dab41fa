package route

import (
	"context"
	"log/slog"

	"github.com/trivium-ai/trivium/core/classify"
	"github.com/trivium-ai/trivium/core/extract"
	"github.com/trivium-ai/trivium/core/lang"
	"github.com/trivium-ai/trivium/core/synth"
	"github.com/trivium-ai/trivium/model"
)

// Router orchestrates the knowledge source cascade. It is stateless per call;
// concurrent Answer calls are independent.
//
// Collaborator failures are not caught here: an error from extraction, a
// source query, or synthesis aborts the whole call and propagates to the
// caller. Empty results and non-answers are the only locally handled
// failure modes.
type Router struct {
	detector  lang.Detector
	extractor extract.Extractor
	graph     GraphSource
	vector    VectorSource
	web       WebSource
	synth     synth.Synthesizer
	log       *slog.Logger
}

// NewRouter creates a router over the given collaborators.
func NewRouter(
	detector lang.Detector,
	extractor extract.Extractor,
	graph GraphSource,
	vector VectorSource,
	web WebSource,
	synthesizer synth.Synthesizer,
	logger *slog.Logger,
) *Router {
	return &Router{
		detector:  detector,
		extractor: extractor,
		graph:     graph,
		vector:    vector,
		web:       web,
		synth:     synthesizer,
		log:       logger,
	}
}

// Answer runs the full cascade for a question and returns exactly one result
// with its knowledge provenance tag, or an error.
//
// Graph-native questions go graph-first: a structured lookup on the extracted
// entity, then vector retrieval, then (language-gated) web search. General
// questions go vector-first with graph and web as ungated fallbacks.
func (r *Router) Answer(ctx context.Context, question string) (*model.Result, error) {
	qc, err := r.newQueryContext(ctx, question)
	if err != nil {
		return nil, err
	}

	r.log.Debug("classified question",
		slog.String("language", qc.Language.String()),
		slog.Bool("graph_intent", qc.GraphIntent),
		slog.Bool("document_specific", qc.DocumentSpecific),
	)

	if qc.GraphIntent {
		return r.graphFirst(ctx, question, qc)
	}
	return r.vectorFirst(ctx, question, qc)
}

// newQueryContext computes language, document specificity, and graph intent
// exactly once for the question. Entities are extracted a single time and
// reused for both intent detection and the graph query target.
func (r *Router) newQueryContext(ctx context.Context, question string) (*queryContext, error) {
	qc := &queryContext{
		Language: r.detector.Detect(question),
	}

	if qc.Language == model.LanguageArabic {
		qc.DocumentSpecific = classify.DocumentSpecific(question)
	}

	entities, err := r.extractor.Extract(ctx, question, qc.Language)
	if err != nil {
		return nil, err
	}
	qc.Entities = entities
	qc.GraphIntent = classify.GraphIntent(entities)

	return qc, nil
}

// graphFirst handles graph-native questions: structured entity lookup first,
// vector retrieval second, web search last and only where permitted.
func (r *Router) graphFirst(ctx context.Context, question string, qc *queryContext) (*model.Result, error) {
	target := classify.GraphQueryTarget(qc.Entities)

	graphHits, err := r.graph.ChunksByEntity(ctx, target)
	if err != nil {
		return nil, err
	}

	if len(graphHits) > 0 {
		answer, err := r.synth.Synthesize(ctx, question, graphHits, qc.Language)
		if err != nil {
			return nil, err
		}
		if !classify.NonAnswer(answer) {
			return &model.Result{
				Answer:    answer,
				Sources:   graphHits,
				Knowledge: model.KnowledgeGraph,
			}, nil
		}
		r.log.Debug("graph answer rejected", slog.Int("hits", len(graphHits)))
	}

	// Graph failed, fall back to semantic retrieval
	vectorHits, err := r.vector.SimilarChunks(ctx, question, qc.Language)
	if err != nil {
		return nil, err
	}
	vectorHits = DedupeChunks(vectorHits)

	if len(vectorHits) > 0 {
		answer, err := r.synth.Synthesize(ctx, question, vectorHits, qc.Language)
		if err != nil {
			return nil, err
		}
		if !classify.NonAnswer(answer) {
			return &model.Result{
				Answer:    answer,
				Sources:   vectorHits,
				Knowledge: model.KnowledgeVectorFallback,
			}, nil
		}
		r.log.Debug("vector fallback answer rejected", slog.Int("hits", len(vectorHits)))
	}

	// Arabic document-specific questions are scoped to ingested content; an
	// external search for them would be misleading.
	allowWeb := qc.Language != model.LanguageArabic || !qc.DocumentSpecific
	if !allowWeb {
		return nil, ErrNoAnswer
	}

	return r.online(ctx, question)
}

// vectorFirst handles general questions: semantic retrieval first, then a
// graph lookup with the raw question text, then an ungated web search.
func (r *Router) vectorFirst(ctx context.Context, question string, qc *queryContext) (*model.Result, error) {
	vectorHits, err := r.vector.SimilarChunks(ctx, question, qc.Language)
	if err != nil {
		return nil, err
	}
	vectorHits = DedupeChunks(vectorHits)

	if len(vectorHits) > 0 {
		answer, err := r.synth.Synthesize(ctx, question, vectorHits, qc.Language)
		if err != nil {
			return nil, err
		}
		if !classify.NonAnswer(answer) {
			return &model.Result{
				Answer:    answer,
				Sources:   vectorHits,
				Knowledge: model.KnowledgeVector,
			}, nil
		}
		r.log.Debug("vector answer rejected", slog.Int("hits", len(vectorHits)))
	}

	// The raw question text is used as the entity name here; no extraction
	// happened for this branch and none is attempted.
	graphHits, err := r.graph.ChunksByEntity(ctx, question)
	if err != nil {
		return nil, err
	}

	if len(graphHits) > 0 {
		answer, err := r.synth.Synthesize(ctx, question, graphHits, qc.Language)
		if err != nil {
			return nil, err
		}
		if !classify.NonAnswer(answer) {
			return &model.Result{
				Answer:    answer,
				Sources:   graphHits,
				Knowledge: model.KnowledgeGraph,
			}, nil
		}
		r.log.Debug("graph fallback answer rejected", slog.Int("hits", len(graphHits)))
	}

	return r.online(ctx, question)
}

// online answers from the first organic web result.
func (r *Router) online(ctx context.Context, question string) (*model.Result, error) {
	result, err := r.web.Search(ctx, question)
	if err != nil {
		return nil, err
	}

	if result == nil || len(result.OrganicResults) == 0 {
		return nil, ErrNoResults
	}

	first := result.OrganicResults[0]
	return &model.Result{
		Answer:    first.Snippet,
		Sources:   model.ExternalLink(first.Link),
		Knowledge: model.KnowledgeOnline,
	}, nil
}
