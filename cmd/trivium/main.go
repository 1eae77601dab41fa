package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/trivium-ai/trivium"
	"github.com/trivium-ai/trivium/helper"
	"github.com/trivium-ai/trivium/server"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(helper.NewPrettyHandler(os.Stdout, helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelInfo},
	}))

	databaseConfig, err := helper.NewDatabaseConfiguration()
	if err != nil {
		log.Fatalf("invalid database configuration: %v", err)
	}

	openAIKey := os.Getenv("OPENAI_API_KEY")
	if openAIKey == "" {
		log.Fatal("OPENAI_API_KEY must be set")
	}

	serpAPIKey := os.Getenv("SERPAPI_KEY")
	if serpAPIKey == "" {
		log.Fatal("SERPAPI_KEY must be set")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	t, err := trivium.New(trivium.Config{
		Database:   databaseConfig,
		OpenAIKey:  openAIKey,
		SerpAPIKey: serpAPIKey,
		Logger:     logger,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	defer t.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(t, logger)
	if err := srv.ListenAndServe(ctx, addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
