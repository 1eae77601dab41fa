package database

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/trivium-ai/trivium/core/embed"
	"github.com/trivium-ai/trivium/helper"
	"github.com/trivium-ai/trivium/model"
	loadSql "github.com/trivium-ai/trivium/sql"
)

// VectorDBHandlerFunctions defines the interface for chunk database operations.
type VectorDBHandlerFunctions interface {
	InsertChunk(chunk *model.Chunk) error
	DeleteChunk(id int) error
	SimilarChunks(ctx context.Context, question string, language model.Language) (model.ChunkList, error)
}

// VectorDBHandler handles chunk storage and similarity search.
// It serves as the semantic knowledge source of the retrieval cascade:
// questions are embedded on the fly and matched against stored chunk
// embeddings with pgvector.
type VectorDBHandler struct {
	db     *helper.Database
	embed  embed.Func
	config model.QueryConfig
}

// NewVectorDBHandler creates a new vector database handler.
// It loads chunk-related SQL functions and creates the chunks table with the
// given embedding dimension.
// If force is true, it will reload the SQL functions even if they already exist.
func NewVectorDBHandler(db *helper.Database, embedder embed.Func, embeddingDim int, config model.QueryConfig, force bool) (*VectorDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}
	if embedder == nil {
		return nil, helper.NewError("embedder validation", fmt.Errorf("embedder is nil"))
	}

	vectorDbHandler := &VectorDBHandler{
		db:     db,
		embed:  embedder,
		config: config,
	}

	err := loadSql.LoadChunksSql(vectorDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load chunks sql", err)
	}

	err = vectorDbHandler.CreateTable(embeddingDim)
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized VectorDBHandler")

	return vectorDbHandler, nil
}

// CreateTable creates the 'chunks' table in the database.
// If the table already exists, it does not create it again.
func (h *VectorDBHandler) CreateTable(embeddingDim int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_chunks($1);`, embeddingDim)
	if err != nil {
		return helper.NewError("initialize chunks table", err)
	}

	h.db.Logger.Info("Checked/created table chunks")

	return nil
}

// InsertChunk inserts or updates a chunk with its embedding
func (h *VectorDBHandler) InsertChunk(chunk *model.Chunk) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_chunk($1, $2, $3, $4, $5, $6)`,
		chunk.DocumentID,
		chunk.PageNumber,
		chunk.ChunkID,
		chunk.Text,
		chunk.Language,
		pq.Array(chunk.Embedding),
	)

	err := row.Scan(
		&chunk.ID,
		&chunk.DocumentID,
		&chunk.PageNumber,
		&chunk.ChunkID,
		&chunk.Text,
		&chunk.Language,
		&chunk.CreatedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// DeleteChunk removes a chunk by its primary key
func (h *VectorDBHandler) DeleteChunk(id int) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_chunk($1)`,
		id,
	)
	if err != nil {
		return helper.NewError("delete chunk", err)
	}

	return nil
}

// SimilarChunks embeds the question and returns the most similar stored
// chunks. The handler's QueryConfig controls top-k and the similarity
// threshold; its language filter, when set, overrides the detected question
// language.
func (h *VectorDBHandler) SimilarChunks(ctx context.Context, question string, language model.Language) (model.ChunkList, error) {
	embedding, err := h.embed(ctx, question)
	if err != nil {
		return nil, helper.NewError("embed question", err)
	}

	// The configured filter wins; otherwise the detected question language
	// filters the search. An unknown language applies no filter at all.
	filter := h.config.Language
	if filter == "" && language != model.LanguageUnknown {
		filter = language
	}

	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_chunks_by_similarity($1, $2, $3, $4)`,
		pgvector.NewVector(embedding),
		h.config.TopK,
		h.config.SimilarityThreshold,
		filter,
	)
	if err != nil {
		return nil, helper.NewError("select chunks by similarity", err)
	}
	defer rows.Close()

	var chunks model.ChunkList
	for rows.Next() {
		chunk := &model.Chunk{}
		err := rows.Scan(
			&chunk.ID,
			&chunk.DocumentID,
			&chunk.PageNumber,
			&chunk.ChunkID,
			&chunk.Text,
			&chunk.Language,
			&chunk.CreatedAt,
			&chunk.Similarity,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}
		chunks = append(chunks, chunk)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("iterate rows", err)
	}

	return chunks, nil
}
