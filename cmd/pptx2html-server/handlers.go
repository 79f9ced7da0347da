package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	pptx2html "github.com/alnah/go-pptx2html"
	"github.com/alnah/go-pptx2html/internal/config"
	"github.com/alnah/go-pptx2html/internal/fileutil"
)

// API holds the handler dependencies.
type API struct {
	cfg       *config.Config
	svc       *pptx2html.Service
	uploadDir string
	decksDir  string
}

func registerRoutes(r *gin.Engine, api *API) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.handleHealth)
		apiGroup.POST("/convert", api.handleConvert)
	}

	// Converted decks are plain static trees; :id is the conversion UUID.
	r.Static("/view", api.decksDir)
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleConvert accepts a multipart PPTX upload, runs the pipeline into a
// fresh deck directory, and returns the conversion result. The uploaded
// temp file is deleted after the pipeline returns, success or failure.
func (a *API) handleConvert(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing file field")
		return
	}
	if !fileutil.HasExtension(fileHeader.Filename, ".pptx") {
		respondError(c, http.StatusBadRequest, "file must have .pptx extension")
		return
	}

	id := uuid.NewString()
	uploadPath := filepath.Join(a.uploadDir, id+".pptx")
	if err := c.SaveUploadedFile(fileHeader, uploadPath); err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("saving upload failed")
		respondError(c, http.StatusInternalServerError, "failed to save upload")
		return
	}
	defer removeUpload(uploadPath)

	result, err := a.svc.Convert(c.Request.Context(), pptx2html.Input{
		InputPath: uploadPath,
		OutputDir: filepath.Join(a.decksDir, id),
	})
	if err != nil {
		respondError(c, statusFor(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         result.Success,
		"id":              id,
		"slides":          result.Slides,
		"mediaFiles":      result.MediaFiles,
		"htmlFile":        result.HTMLFile,
		"cssFiles":        result.CSSFiles,
		"outputDirectory": result.OutputDir,
		"viewUrl":         "/view/" + id + "/",
	})
}

// statusFor maps pipeline errors to HTTP status codes: malformed input is
// the client's fault, everything else is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pptx2html.ErrInvalidContainer),
		errors.Is(err, pptx2html.ErrMalformedSlideKey),
		errors.Is(err, pptx2html.ErrDuplicateOrdinal):
		return http.StatusBadRequest
	case errors.Is(err, pptx2html.ErrConversionTimeout),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": strings.TrimSpace(message)})
}

// removeUpload deletes the uploaded temp file; the upload layer owns the
// input file's lifecycle, not the pipeline.
func removeUpload(path string) {
	if err := os.Remove(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to remove upload")
	}
}
