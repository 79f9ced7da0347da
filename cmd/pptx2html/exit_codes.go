package main

import (
	"errors"
	"os"

	pptx2html "github.com/alnah/go-pptx2html"
	"github.com/alnah/go-pptx2html/internal/config"
)

// Exit codes for the pptx2html CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, pptx2html.ErrOutputWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, pptx2html.ErrEmptyInputPath) ||
		errors.Is(err, pptx2html.ErrEmptyOutputDir) ||
		errors.Is(err, pptx2html.ErrInvalidContainer) ||
		errors.Is(err, pptx2html.ErrMalformedSlideKey) ||
		errors.Is(err, pptx2html.ErrDuplicateOrdinal) {
		return ExitUsage
	}

	return ExitGeneral
}
