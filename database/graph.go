package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trivium-ai/trivium/helper"
	"github.com/trivium-ai/trivium/model"
	loadSql "github.com/trivium-ai/trivium/sql"
)

// GraphDBHandlerFunctions defines the interface for entity graph operations.
type GraphDBHandlerFunctions interface {
	InsertEntity(entity *model.Entity) error
	LinkMention(entityID uuid.UUID, chunkPK int) error
	ChunksByEntity(ctx context.Context, entityName string) (model.ChunkList, error)
}

// GraphDBHandler handles the entity-mention graph.
// It serves as the structured knowledge source of the retrieval cascade:
// an entity name resolves to the chunks that mention it.
type GraphDBHandler struct {
	db *helper.Database
}

// NewGraphDBHandler creates a new graph database handler.
// It loads entity-related SQL functions and creates the entity and mention
// tables. The chunks table must exist first.
// If force is true, it will reload the SQL functions even if they already exist.
func NewGraphDBHandler(db *helper.Database, force bool) (*GraphDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	graphDbHandler := &GraphDBHandler{
		db: db,
	}

	err := loadSql.LoadEntitiesSql(graphDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load entities sql", err)
	}

	err = graphDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized GraphDBHandler")

	return graphDbHandler, nil
}

// CreateTable creates the 'entities' and 'mentions' tables in the database.
// If the tables already exist, it does not create them again.
func (h *GraphDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_entities();`)
	if err != nil {
		return helper.NewError("initialize entities tables", err)
	}

	h.db.Logger.Info("Checked/created tables entities, mentions")

	return nil
}

// InsertEntity inserts or updates an entity by name, setting its ID
func (h *GraphDBHandler) InsertEntity(entity *model.Entity) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_entity($1, $2)`,
		entity.Name,
		entity.Type,
	)

	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Type,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// LinkMention records that a chunk mentions an entity
func (h *GraphDBHandler) LinkMention(entityID uuid.UUID, chunkPK int) error {
	_, err := h.db.Instance.Exec(
		`SELECT link_mention($1, $2)`,
		entityID,
		chunkPK,
	)
	if err != nil {
		return helper.NewError("link mention", err)
	}

	return nil
}

// ChunksByEntity returns all chunks mentioning the named entity.
// An empty or blank entity name yields an empty list, never an error; the
// cascade passes unresolved targets through and expects no hits.
func (h *GraphDBHandler) ChunksByEntity(ctx context.Context, entityName string) (model.ChunkList, error) {
	if strings.TrimSpace(entityName) == "" {
		return model.ChunkList{}, nil
	}

	rows, err := h.db.Instance.QueryContext(
		ctx,
		`SELECT * FROM select_chunks_by_entity_name($1)`,
		entityName,
	)
	if err != nil {
		return nil, helper.NewError("select chunks by entity name", err)
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
