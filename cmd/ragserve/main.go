package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/andrew/ragserve/pkg/auth"
	"github.com/andrew/ragserve/pkg/config"
	"github.com/andrew/ragserve/pkg/document"
	"github.com/andrew/ragserve/pkg/embed"
	"github.com/andrew/ragserve/pkg/llm"
	"github.com/andrew/ragserve/pkg/retrieval"
	"github.com/andrew/ragserve/pkg/server"
	"github.com/andrew/ragserve/pkg/usage"
)

var configPath = flag.String("config", "config.yaml", "Path to the yaml config file")

func main() {
	flag.Parse()

	// .env is optional; environment beats file config either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	embedder, err := embed.NewOllama(cfg.Ollama.URL, cfg.Ollama.EmbedModel)
	if err != nil {
		log.Fatalf("initializing embedder: %v", err)
	}

	completer, err := llm.NewOllamaClient(cfg.Ollama.URL, cfg.Ollama.GenerateModel, llm.DefaultModelConfig())
	if err != nil {
		log.Fatalf("initializing completion client: %v", err)
	}

	authService, err := auth.NewService(cfg.Auth.SecretKey)
	if err != nil {
		log.Fatalf("initializing auth: %v", err)
	}

	store := document.NewStore(embedder)
	retriever := retrieval.NewService(embedder, store)
	answerer := retrieval.NewAnswerService(retriever, completer, "")
	recorder := usage.NewRecorder()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(store, retriever, answerer, authService, recorder).Router(),
	}

	go func() {
		log.Printf("ragserve listening on %s (ollama: %s)", cfg.Server.Addr, cfg.Ollama.URL)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}
}
