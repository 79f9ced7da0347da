package pptx2html

// Notes:
// - buildPresentationCSS: tests the fixed stylesheet covers layout, controls,
//   disabled state, indicator, and all three keyframe animations
// - WriteStylesheet: tests the file write and returned path

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBuildPresentationCSS(t *testing.T) {
	t.Parallel()

	css := buildPresentationCSS()

	wantContains := []string{
		".presentation",
		".slide",
		".slide.active",
		".nav-controls",
		"button:disabled",
		".slide-indicator",
		"position: fixed",
		"@keyframes fade",
		"@keyframes slide-from-left",
		"@keyframes slide-from-right",
		"100vw",
		"100vh",
	}
	for _, want := range wantContains {
		if !strings.Contains(css, want) {
			t.Errorf("stylesheet missing %q", want)
		}
	}
}

func TestBuildPresentationCSSIsConstant(t *testing.T) {
	t.Parallel()

	// The stylesheet is not parameterized by package content.
	if buildPresentationCSS() != buildPresentationCSS() {
		t.Error("stylesheet must be deterministic")
	}
}

func TestWriteStylesheet(t *testing.T) {
	t.Parallel()

	t.Run("writes presentation.css and returns its path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path, err := WriteStylesheet(dir)
		if err != nil {
			t.Fatalf("WriteStylesheet() error = %v", err)
		}

		if path != filepath.Join(dir, StylesheetFileName) {
			t.Errorf("path = %q, want %q", path, filepath.Join(dir, StylesheetFileName))
		}
		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading stylesheet: %v", err)
		}
		if string(content) != buildPresentationCSS() {
			t.Error("written stylesheet differs from generated CSS")
		}
	})

	t.Run("missing directory fails with ErrOutputWrite", func(t *testing.T) {
		t.Parallel()

		_, err := WriteStylesheet(filepath.Join(t.TempDir(), "does", "not", "exist"))
		if !errors.Is(err, ErrOutputWrite) {
			t.Errorf("WriteStylesheet() error = %v, want ErrOutputWrite", err)
		}
	})
}
