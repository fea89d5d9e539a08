package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/andrew/ragserve/pkg/auth"
	"github.com/andrew/ragserve/pkg/document"
	"github.com/andrew/ragserve/pkg/models"
	"github.com/andrew/ragserve/pkg/retrieval"
	"github.com/andrew/ragserve/pkg/usage"
)

// Uploads above this size are rejected before extraction.
const maxUploadBytes = 32 << 20

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := s.auth.Authenticate(username, password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
		return
	}

	token, err := s.auth.CreateAccessToken(user)
	if err != nil {
		log.Printf("token issue failed for %s: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"role":         user.Role,
	})
}

func (s *Server) handleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing file upload"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"detail": "file too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read file upload"})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "could not read file upload"})
		return
	}

	count, err := s.store.Ingest(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UploadResponse{
		Message:    fmt.Sprintf("Uploaded %d documents successfully!", count),
		ChunkCount: count,
	})
}

func (s *Server) handleRetrieve(c *gin.Context) {
	var query models.Query
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	results, err := s.retriever.Retrieve(c.Request.Context(), query)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

func (s *Server) handleGenerate(c *gin.Context) {
	var query models.Query
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	answer, err := s.answerer.Answer(c.Request.Context(), query)
	if err != nil {
		s.writeError(c, err)
		return
	}

	if user, ok := auth.CurrentUser(c); ok {
		s.usage.Record(user.Username, "generate", usage.CountTokens(query.Text), usage.CountTokens(answer))
	}

	c.JSON(http.StatusOK, models.AnswerResponse{Answer: answer})
}

func (s *Server) handleTokenUsage(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": auth.ErrInvalidToken.Error()})
		return
	}

	var records []usage.Record
	if user.Role == "admin" {
		records = s.usage.All()
	} else {
		records = s.usage.ForUser(user.Username)
	}
	if records == nil {
		records = []usage.Record{}
	}
	c.JSON(http.StatusOK, records)
}

// writeError maps domain errors onto HTTP statuses. Unknown errors are
// logged and surfaced as opaque 500s.
func (s *Server) writeError(c *gin.Context, err error) {
	var docErr *document.Error
	var timeoutErr *retrieval.TimeoutError
	var genErr *retrieval.GenerationError

	switch {
	case errors.As(err, &docErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": docErr.Message()})
	case errors.Is(err, retrieval.ErrNoDocuments):
		c.JSON(http.StatusBadRequest, gin.H{"detail": retrieval.ErrNoDocuments.Error()})
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		log.Printf("timeout: %v", err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"detail": "upstream model call timed out"})
	case errors.As(err, &genErr):
		log.Printf("generation error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Error generating answer"})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}
