package pptx2html

import (
	"time"

	"github.com/rs/zerolog"
)

// Output file names produced inside the output directory.
const (
	IndexFileName      = "index.html"
	StylesheetFileName = "presentation.css"
	MediaDirName       = "media"
)

// SlideDescriptor identifies one slide part discovered inside a package.
// Ordinal is the 1-based position parsed from the entry name; descriptors
// are always sorted ascending by Ordinal before rendering.
type SlideDescriptor struct {
	Ordinal   int    // positive, unique within a package
	RawMarkup string // slide part XML, read but not interpreted
	SourceKey string // entry key inside the package
}

// MediaAsset describes one media entry extracted to the output directory.
type MediaAsset struct {
	SourceKey       string // entry key inside the package
	FileName        string // final path segment of SourceKey
	DestinationPath string // absolute path of the written file
	RelativePath    string // "media/<FileName>", for use in generated markup
}

// SlideFragment is the standalone HTML for one slide, produced one-to-one
// from a SlideDescriptor.
type SlideFragment struct {
	Ordinal    int
	HTMLMarkup string
}

// Input contains conversion parameters.
type Input struct {
	InputPath string // path to a readable PPTX file (required)
	OutputDir string // destination directory, created if missing (required)
}

// ConversionResult is the terminal artifact returned to the caller.
type ConversionResult struct {
	Success    bool     `json:"success"`
	Slides     int      `json:"slides"`
	MediaFiles int      `json:"mediaFiles"`
	HTMLFile   string   `json:"htmlFile"`
	CSSFiles   []string `json:"cssFiles"`
	OutputDir  string   `json:"outputDirectory"`
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
	logger  zerolog.Logger
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-conversion deadline.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("pptx2html: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithLogger sets the structured logger used by the pipeline.
// The default logger discards all events.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.cfg.logger = logger
	}
}
