package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	pptx2html "github.com/alnah/go-pptx2html"
	"github.com/alnah/go-pptx2html/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// --- success ---
		{"nil error", nil, ExitSuccess},

		// --- I/O errors ---
		{"file does not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"input not found", ErrInputNotFound, ExitIO},
		{"output write failure", pptx2html.ErrOutputWrite, ExitIO},
		{"wrapped IO error", fmt.Errorf("converting: %w", pptx2html.ErrOutputWrite), ExitIO},

		// --- usage errors ---
		{"no input", ErrNoInput, ExitUsage},
		{"invalid extension", ErrInvalidExtension, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid workers", config.ErrInvalidWorkers, ExitUsage},
		{"invalid timeout", config.ErrInvalidTimeout, ExitUsage},
		{"empty input path", pptx2html.ErrEmptyInputPath, ExitUsage},
		{"empty output dir", pptx2html.ErrEmptyOutputDir, ExitUsage},
		{"invalid container", pptx2html.ErrInvalidContainer, ExitUsage},
		{"malformed slide key", pptx2html.ErrMalformedSlideKey, ExitUsage},
		{"duplicate ordinal", pptx2html.ErrDuplicateOrdinal, ExitUsage},

		// --- general errors ---
		{"conversion timeout", pptx2html.ErrConversionTimeout, ExitGeneral},
		{"unknown error", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForWrappedConversionFailure(t *testing.T) {
	t.Parallel()

	// A conversion failure carrying an invalid-container cause surfaces
	// the cause's exit code through the wrapping.
	err := fmt.Errorf("%w: %w", pptx2html.ErrConversionFailed, pptx2html.ErrInvalidContainer)
	if got := exitCodeFor(err); got != ExitUsage {
		t.Errorf("exitCodeFor(%v) = %d, want %d", err, got, ExitUsage)
	}
}
