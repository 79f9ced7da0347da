package pptx2html

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultFontFamily is the font stack for generated slides and controls.
const defaultFontFamily = "'Segoe UI', 'Helvetica Neue', Arial, sans-serif"

// slideTransitionSeconds is the cross-fade duration between slides.
const slideTransitionSeconds = 0.5

// buildPresentationCSS generates the fixed slideshow stylesheet. It is not
// parameterized by package content: layout, navigation, and keyframes are
// constant regardless of input.
func buildPresentationCSS() string {
	var buf strings.Builder

	buf.WriteString(fmt.Sprintf(`/* Base layout */
* {
  margin: 0;
  padding: 0;
  box-sizing: border-box;
}

body {
  font-family: %s;
  background: #1a1a2e;
  color: #eaeaea;
  overflow: hidden;
}

/* Deck container fills the viewport */
.presentation {
  position: relative;
  width: 100vw;
  height: 100vh;
}
`, defaultFontFamily))

	buf.WriteString(fmt.Sprintf(`
/* Slides stack absolutely and cross-fade via the active marker class */
.slide {
  position: absolute;
  top: 0;
  left: 0;
  width: 100%%;
  height: 100%%;
  display: flex;
  align-items: center;
  justify-content: center;
  opacity: 0;
  visibility: hidden;
  transition: opacity %.1fs ease-in-out, visibility %.1fs;
}

.slide.active {
  opacity: 1;
  visibility: visible;
}

.slide-content {
  max-width: 80%%;
  text-align: center;
}

.slide-content h2 {
  font-size: 3rem;
  margin-bottom: 1rem;
}

.slide-content p {
  font-size: 1.25rem;
  color: #a0a0b8;
}
`, slideTransitionSeconds, slideTransitionSeconds))

	buf.WriteString(`
/* Navigation controls */
.nav-controls {
  position: fixed;
  bottom: 2rem;
  left: 50%;
  transform: translateX(-50%);
  display: flex;
  gap: 1rem;
  align-items: center;
  z-index: 10;
}

.nav-controls button {
  font-family: inherit;
  font-size: 1rem;
  padding: 0.5rem 1.5rem;
  border: none;
  border-radius: 4px;
  background: #0f3460;
  color: #eaeaea;
  cursor: pointer;
  transition: background 0.2s;
}

.nav-controls button:hover:not(:disabled) {
  background: #16498c;
}

.nav-controls button:disabled {
  opacity: 0.4;
  cursor: default;
}

/* Slide-count indicator */
.slide-indicator {
  position: fixed;
  top: 1.5rem;
  right: 2rem;
  font-size: 0.9rem;
  color: #a0a0b8;
  z-index: 10;
}
`)

	buf.WriteString(`
/* Keyframe animations */
@keyframes fade {
  from { opacity: 0; }
  to   { opacity: 1; }
}

@keyframes slide-from-left {
  from { transform: translateX(-100%); opacity: 0; }
  to   { transform: translateX(0); opacity: 1; }
}

@keyframes slide-from-right {
  from { transform: translateX(100%); opacity: 0; }
  to   { transform: translateX(0); opacity: 1; }
}
`)

	return buf.String()
}

// WriteStylesheet writes the fixed presentation stylesheet into outputDir
// and returns the written file's path.
func WriteStylesheet(outputDir string) (string, error) {
	dest := filepath.Join(outputDir, StylesheetFileName)
	if err := os.WriteFile(dest, []byte(buildPresentationCSS()), filePermissions); err != nil {
		return "", fmt.Errorf("%w: writing %q: %v", ErrOutputWrite, dest, err)
	}
	return dest, nil
}
