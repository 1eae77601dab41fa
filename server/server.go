package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trivium-ai/trivium/core/route"
	"github.com/trivium-ai/trivium/model"
)

// Answerer is the question-answering capability the server exposes.
type Answerer interface {
	Answer(ctx context.Context, question string) (*model.Result, error)
}

// Server exposes an Answerer over HTTP.
type Server struct {
	answerer Answerer
	log      *slog.Logger
	mux      *http.ServeMux
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer    string          `json:"answer"`
	Knowledge model.Knowledge `json:"knowledge"`
	Sources   any             `json:"sources,omitempty"`
	TraceID   string          `json:"trace_id"`
}

type errorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id"`
}

// NewServer creates the HTTP server around an Answerer.
func NewServer(answerer Answerer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	server := &Server{
		answerer: answerer,
		log:      logger,
		mux:      http.NewServeMux(),
	}

	server.mux.HandleFunc("POST /ask", server.handleAsk)
	server.mux.HandleFunc("GET /healthz", server.handleHealth)

	return server
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: s.mux,
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.log.Error("Server shutdown failed", "error", err)
		}
	}()

	s.log.Info("Server listening", "addr", addr)

	err := httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.NewString()
	start := time.Now()

	var request askRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body", traceID)
		return
	}

	question := strings.TrimSpace(request.Question)
	if question == "" {
		s.writeError(w, http.StatusBadRequest, "question must not be empty", traceID)
		return
	}

	result, err := s.answerer.Answer(r.Context(), question)
	if err != nil {
		duration := time.Since(start)
		if errors.Is(err, route.ErrNoAnswer) || errors.Is(err, route.ErrNoResults) {
			s.log.Info("No answer found", "traceId", traceID, "duration", duration)
			s.writeError(w, http.StatusNotFound, "no answer found", traceID)
			return
		}
		s.log.Error("Answer failed", "traceId", traceID, "duration", duration, "error", err)
		s.writeError(w, http.StatusInternalServerError, "internal error", traceID)
		return
	}

	s.log.Info("Answered question", "traceId", traceID, "knowledge", result.Knowledge, "duration", time.Since(start))

	s.writeJSON(w, http.StatusOK, askResponse{
		Answer:    result.Answer,
		Knowledge: result.Knowledge,
		Sources:   result.Sources,
		TraceID:   traceID,
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string, traceID string) {
	s.writeJSON(w, status, errorResponse{Error: message, TraceID: traceID})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		s.log.Error("Response encoding failed", "error", err)
	}
}
