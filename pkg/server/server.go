// Package server exposes the RAG service over HTTP.
package server

import (
	"github.com/gin-gonic/gin"

	"github.com/andrew/ragserve/pkg/auth"
	"github.com/andrew/ragserve/pkg/document"
	"github.com/andrew/ragserve/pkg/retrieval"
	"github.com/andrew/ragserve/pkg/usage"
)

// Server wires the service components to their HTTP endpoints.
type Server struct {
	store     *document.Store
	retriever *retrieval.Service
	answerer  *retrieval.AnswerService
	auth      *auth.Service
	usage     *usage.Recorder
}

// New creates a server over the given components.
func New(store *document.Store, retriever *retrieval.Service, answerer *retrieval.AnswerService, authService *auth.Service, recorder *usage.Recorder) *Server {
	return &Server{
		store:     store,
		retriever: retriever,
		answerer:  answerer,
		auth:      authService,
		usage:     recorder,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/health", s.handleHealth)
	router.POST("/token", s.handleLogin)

	authorized := router.Group("/", auth.Middleware(s.auth))
	authorized.POST("/upload", s.handleUpload)
	authorized.POST("/retrieve", s.handleRetrieve)
	authorized.POST("/generate", s.handleGenerate)
	authorized.GET("/token-usage", s.handleTokenUsage)

	return router
}
