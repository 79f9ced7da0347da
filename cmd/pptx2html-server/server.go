package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	pptx2html "github.com/alnah/go-pptx2html"
	"github.com/alnah/go-pptx2html/internal/config"
)

// Server wraps the gin engine and the conversion service.
type Server struct {
	engine *gin.Engine
	cfg    *config.Config
}

// NewServer builds the engine, prepares the data directories, and registers
// routes.
func NewServer(cfg *config.Config) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)

	uploadDir := filepath.Join(cfg.Server.DataDir, "uploads")
	decksDir := filepath.Join(cfg.Server.DataDir, "decks")
	for _, dir := range []string{uploadDir, decksDir} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("init data dir %q: %w", dir, err)
		}
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	svc := pptx2html.New(
		pptx2html.WithTimeout(timeout),
		pptx2html.WithLogger(log.Logger),
	)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.Use(maxBodySize(cfg.MaxUploadBytes()))

	api := &API{cfg: cfg, svc: svc, uploadDir: uploadDir, decksDir: decksDir}
	registerRoutes(engine, api)

	return &Server{engine: engine, cfg: cfg}, nil
}

// Run starts the HTTP listener and blocks.
func (s *Server) Run() error {
	return s.engine.Run(fmt.Sprintf(":%s", s.cfg.Server.Port))
}

// requestLogger emits one structured log event per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// maxBodySize caps request bodies so oversized uploads fail early.
func maxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
