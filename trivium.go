// Package trivium answers natural-language questions from a cascade of
// knowledge sources: an entity graph and a vector store in PostgreSQL,
// with web search as the last resort. Questions in English and Arabic are
// routed differently based on detected language and extracted entities.
package trivium

import (
	"context"
	"log/slog"
	"os"

	"github.com/trivium-ai/trivium/core/embed"
	"github.com/trivium-ai/trivium/core/extract"
	"github.com/trivium-ai/trivium/core/lang"
	"github.com/trivium-ai/trivium/core/route"
	"github.com/trivium-ai/trivium/core/synth"
	"github.com/trivium-ai/trivium/database"
	"github.com/trivium-ai/trivium/helper"
	"github.com/trivium-ai/trivium/model"
	loadSql "github.com/trivium-ai/trivium/sql"
	"github.com/trivium-ai/trivium/web"
)

const (
	defaultEmbeddingModel = "text-embedding-3-large"
	defaultChatModel      = "gpt-4o-mini"
	defaultEmbeddingDim   = 3072
)

// Config holds everything needed to assemble a Trivium instance.
type Config struct {
	Database *helper.DatabaseConfiguration

	OpenAIKey  string
	SerpAPIKey string

	// EmbeddingModel defaults to text-embedding-3-large with dimension 3072.
	EmbeddingModel string
	EmbeddingDim   int

	// ChatModel defaults to gpt-4o-mini.
	ChatModel string

	// DisableNER skips loading the local NER model; all entity extraction
	// then goes through the LLM.
	DisableNER bool

	Query model.QueryConfig

	Logger *slog.Logger
}

// Trivium wires the knowledge sources into a question answering service.
type Trivium struct {
	Documents *database.DocumentsDBHandler
	Vector    *database.VectorDBHandler
	Graph     *database.GraphDBHandler

	router *route.Router
	ner    *extract.NERExtractor
	db     *helper.Database
	log    *slog.Logger
}

// New assembles a Trivium instance: database connection, stored functions,
// handlers, extractors, synthesizer and router.
func New(config Config) (*Trivium, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(helper.NewPrettyHandler(os.Stdout, helper.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{Level: slog.LevelInfo},
		}))
	}

	if config.EmbeddingModel == "" {
		config.EmbeddingModel = defaultEmbeddingModel
	}
	if config.EmbeddingDim == 0 {
		config.EmbeddingDim = defaultEmbeddingDim
	}
	if config.ChatModel == "" {
		config.ChatModel = defaultChatModel
	}
	if config.Query.TopK == 0 {
		config.Query = model.DefaultQueryConfig()
	}

	db := helper.NewDatabase("trivium", config.Database, logger)

	err := loadSql.Init(db.Instance)
	if err != nil {
		return nil, helper.NewError("initialize database extensions", err)
	}

	documentsHandler, err := database.NewDocumentsDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create documents handler", err)
	}

	embedder, err := embed.NewOpenAIEmbedder(config.OpenAIKey, config.EmbeddingModel)
	if err != nil {
		return nil, helper.NewError("create embedder", err)
	}

	vectorHandler, err := database.NewVectorDBHandler(db, embedder, config.EmbeddingDim, config.Query, false)
	if err != nil {
		return nil, helper.NewError("create vector handler", err)
	}

	graphHandler, err := database.NewGraphDBHandler(db, false)
	if err != nil {
		return nil, helper.NewError("create graph handler", err)
	}

	llmExtractor, err := extract.NewLLMExtractor(config.OpenAIKey, config.ChatModel)
	if err != nil {
		return nil, helper.NewError("create llm extractor", err)
	}

	var nerExtractor *extract.NERExtractor
	if !config.DisableNER {
		nerExtractor, err = extract.NewNERExtractor()
		if err != nil {
			// Not fatal: extraction falls back to the LLM for all languages.
			logger.Warn("NER model unavailable, using LLM extraction only", "error", err)
			nerExtractor = nil
		}
	}

	// Assign the interface only when a session exists; a typed nil would
	// defeat the nil check inside the smart extractor.
	var ner extract.Extractor
	if nerExtractor != nil {
		ner = nerExtractor
	}

	synthesizer, err := synth.NewOpenAISynthesizer(config.OpenAIKey, config.ChatModel)
	if err != nil {
		return nil, helper.NewError("create synthesizer", err)
	}

	router := route.NewRouter(
		lang.NewLinguaDetector(),
		extract.NewSmartExtractor(ner, llmExtractor),
		graphHandler,
		vectorHandler,
		web.NewSerpClient(config.SerpAPIKey, logger),
		synthesizer,
		logger,
	)

	logger.Info("Initialized Trivium")

	return &Trivium{
		Documents: documentsHandler,
		Vector:    vectorHandler,
		Graph:     graphHandler,
		router:    router,
		ner:       nerExtractor,
		db:        db,
		log:       logger,
	}, nil
}

// Answer runs the retrieval cascade for the question and returns one result.
func (t *Trivium) Answer(ctx context.Context, question string) (*model.Result, error) {
	return t.router.Answer(ctx, question)
}

// Close releases the NER session and the database connection.
func (t *Trivium) Close() error {
	if t.ner != nil {
		if err := t.ner.Close(); err != nil {
			return helper.NewError("close ner session", err)
		}
	}
	return t.db.Close()
}
