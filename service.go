package pptx2html

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// packageOpener defines the contract for opening a presentation container.
type packageOpener interface {
	Open(path string) (*Package, error)
}

// slideDiscoverer defines the contract for slide discovery.
type slideDiscoverer interface {
	Discover(ctx context.Context, pkg *Package) ([]SlideDescriptor, error)
}

// mediaExtractor defines the contract for media extraction.
type mediaExtractor interface {
	Extract(ctx context.Context, pkg *Package, destRoot string) ([]MediaAsset, error)
}

// slideRenderer defines the contract for mapping descriptors to fragments.
type slideRenderer interface {
	Render(descriptors []SlideDescriptor) []SlideFragment
}

// styleSynthesizer defines the contract for writing the fixed stylesheet.
type styleSynthesizer interface {
	WriteStylesheet(outputDir string) (string, error)
}

// presentationAssembler defines the contract for assembling the document.
type presentationAssembler interface {
	Assemble(fragments []SlideFragment, cssHref, outputDir string) (string, error)
}

// Default stage implementations, thin wrappers over the package functions.
type (
	fileOpener        struct{}
	ooxmlDiscovery    struct{}
	ooxmlExtraction   struct{}
	placeholderRender struct{}
	fixedStylesheet   struct{}
	documentAssembly  struct{}
)

func (fileOpener) Open(path string) (*Package, error) { return OpenPackageFile(path) }

func (ooxmlDiscovery) Discover(ctx context.Context, pkg *Package) ([]SlideDescriptor, error) {
	return DiscoverSlides(ctx, pkg)
}

func (ooxmlExtraction) Extract(ctx context.Context, pkg *Package, destRoot string) ([]MediaAsset, error) {
	return ExtractMedia(ctx, pkg, destRoot)
}

func (placeholderRender) Render(descriptors []SlideDescriptor) []SlideFragment {
	return RenderSlides(descriptors)
}

func (fixedStylesheet) WriteStylesheet(outputDir string) (string, error) {
	return WriteStylesheet(outputDir)
}

func (documentAssembly) Assemble(fragments []SlideFragment, cssHref, outputDir string) (string, error) {
	return AssemblePresentation(fragments, cssHref, outputDir)
}

// Compile-time interface implementation checks.
var (
	_ packageOpener         = fileOpener{}
	_ slideDiscoverer       = ooxmlDiscovery{}
	_ mediaExtractor        = ooxmlExtraction{}
	_ slideRenderer         = placeholderRender{}
	_ styleSynthesizer      = fixedStylesheet{}
	_ presentationAssembler = documentAssembly{}
)

// Service orchestrates the PPTX-to-HTML5 conversion pipeline.
type Service struct {
	cfg       serviceConfig
	opener    packageOpener
	discovery slideDiscoverer
	extractor mediaExtractor
	renderer  slideRenderer
	styler    styleSynthesizer
	assembler presentationAssembler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithLogger).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			timeout: defaultTimeout,
			logger:  zerolog.Nop(),
		},
		opener:    fileOpener{},
		discovery: ooxmlDiscovery{},
		extractor: ooxmlExtraction{},
		renderer:  placeholderRender{},
		styler:    fixedStylesheet{},
		assembler: documentAssembly{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Convert runs the full pipeline and returns the conversion result.
// The context is used for cancellation; the configured timeout is applied
// on top of it. Any stage failure aborts remaining stages and is wrapped
// into ErrConversionFailed with the original cause preserved. There is no
// retry and no partial-output cleanup: a failed conversion may leave a
// partially populated output directory.
func (s *Service) Convert(ctx context.Context, input Input) (*ConversionResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.convert(ctx, input)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: %w", ErrConversionTimeout, err)
		}
		s.cfg.logger.Error().
			Err(err).
			Str("input", input.InputPath).
			Msg("conversion failed")
		return nil, fmt.Errorf("%w: %w", ErrConversionFailed, err)
	}

	s.cfg.logger.Info().
		Str("input", input.InputPath).
		Str("output", result.OutputDir).
		Int("slides", result.Slides).
		Int("media_files", result.MediaFiles).
		Dur("duration", time.Since(start)).
		Msg("conversion complete")
	return result, nil
}

// convert sequences the pipeline stages for one conversion request.
func (s *Service) convert(ctx context.Context, input Input) (*ConversionResult, error) {
	// The output directory is created eagerly, before the package is
	// opened, so even a failed conversion leaves it behind (empty).
	if err := os.MkdirAll(input.OutputDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: creating %q: %v", ErrOutputWrite, input.OutputDir, err)
	}

	pkg, err := s.opener.Open(input.InputPath)
	if err != nil {
		return nil, err
	}
	s.cfg.logger.Debug().
		Str("input", input.InputPath).
		Int("entries", len(pkg.Entries())).
		Msg("package opened")

	// Slide discovery and media extraction are independent: run them
	// concurrently over the same package, full join before rendering.
	var (
		descriptors []SlideDescriptor
		assets      []MediaAsset
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var derr error
		descriptors, derr = s.discovery.Discover(gctx, pkg)
		return derr
	})
	g.Go(func() error {
		var merr error
		assets, merr = s.extractor.Extract(gctx, pkg, input.OutputDir)
		return merr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fragments := s.renderer.Render(descriptors)
	if err := s.writeFragments(ctx, fragments, input.OutputDir); err != nil {
		return nil, err
	}

	cssPath, err := s.styler.WriteStylesheet(input.OutputDir)
	if err != nil {
		return nil, err
	}

	htmlPath, err := s.assembler.Assemble(fragments, StylesheetFileName, input.OutputDir)
	if err != nil {
		return nil, err
	}

	return &ConversionResult{
		Success:    true,
		Slides:     len(fragments),
		MediaFiles: len(assets),
		HTMLFile:   htmlPath,
		CSSFiles:   []string{cssPath},
		OutputDir:  input.OutputDir,
	}, nil
}

// writeFragments writes each fragment to its own numbered HTML file, a
// discoverable artifact in addition to the assembled document.
func (s *Service) writeFragments(ctx context.Context, fragments []SlideFragment, outputDir string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for _, f := range fragments {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			dest := filepath.Join(outputDir, FragmentFileName(f.Ordinal))
			if err := os.WriteFile(dest, []byte(f.HTMLMarkup), filePermissions); err != nil {
				return fmt.Errorf("%w: writing %q: %v", ErrOutputWrite, dest, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// validateInput checks that required fields are present.
func validateInput(input Input) error {
	if input.InputPath == "" {
		return ErrEmptyInputPath
	}
	if input.OutputDir == "" {
		return ErrEmptyOutputDir
	}
	return nil
}
