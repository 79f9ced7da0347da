package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	pptx2html "github.com/alnah/go-pptx2html"
	"github.com/alnah/go-pptx2html/internal/config"
	"github.com/alnah/go-pptx2html/internal/fileutil"
	"github.com/alnah/go-pptx2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrInputNotFound    = errors.New("input file not found")
	ErrInvalidExtension = errors.New("file must have .pptx extension")
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input pptx2html.Input) (*pptx2html.ConversionResult, error)
}

// Compile-time interface implementation check.
var _ Converter = (*pptx2html.Service)(nil)

// fileResult holds the outcome of one conversion in a batch.
type fileResult struct {
	inputPath string
	result    *pptx2html.ConversionResult
	err       error
	duration  time.Duration
}

// runConvert validates inputs, builds the service pool, and fans the batch
// out over it.
func runConvert(inputs []string, flags *convertFlags, poolSize int) error {
	if len(inputs) == 0 {
		return ErrNoInput
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound())
			}
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	mergeFlags(flags, cfg)

	for _, input := range inputs {
		if err := validateInput(input); err != nil {
			return err
		}
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return err
	}

	pool := pptx2html.NewServicePool(poolSize, pptx2html.WithTimeout(timeout))
	defer func() { _ = pool.Close() }()

	results := convertBatch(context.Background(), inputs, cfg.Output.Dir, pool)
	return report(results, flags)
}

// mergeFlags merges CLI flags into the config (CLI wins).
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}
	if flags.workers > 0 {
		cfg.Output.Workers = flags.workers
	}
	if flags.timeout != "" {
		cfg.Output.Timeout = flags.timeout
	}
}

// validateInput checks that the input exists and looks like a PPTX file.
func validateInput(path string) error {
	if !fileutil.HasExtension(path, ".pptx") {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	if !fileutil.FileExists(path) {
		return fmt.Errorf("%w: %q", ErrInputNotFound, path)
	}
	return nil
}

// convertBatch runs every input through the pool, one goroutine per file,
// bounded by the pool size. Results preserve input order.
func convertBatch(ctx context.Context, inputs []string, outputRoot string, pool *pptx2html.ServicePool) []fileResult {
	results := make([]fileResult, len(inputs))
	var wg sync.WaitGroup

	for i, input := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			start := time.Now()
			result, err := svc.Convert(ctx, pptx2html.Input{
				InputPath: input,
				OutputDir: filepath.Join(outputRoot, fileutil.Stem(input)),
			})
			results[i] = fileResult{
				inputPath: input,
				result:    result,
				err:       err,
				duration:  time.Since(start),
			}
		}()
	}

	wg.Wait()
	return results
}

// report prints per-file outcomes and returns the first error, decorated
// with an actionable hint where one exists.
func report(results []fileResult, flags *convertFlags) error {
	var firstErr error
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", r.inputPath, r.err)
			if firstErr == nil {
				firstErr = decorate(r.err)
			}
			continue
		}
		if !flags.quiet {
			fmt.Printf("Created %s (%d slides, %d media files", r.result.OutputDir, r.result.Slides, r.result.MediaFiles)
			if flags.verbose {
				fmt.Printf(", %s", r.duration.Round(time.Millisecond))
			}
			fmt.Println(")")
		}
	}
	return firstErr
}

// decorate appends a hint to known error categories.
func decorate(err error) error {
	switch {
	case errors.Is(err, pptx2html.ErrInvalidContainer):
		return fmt.Errorf("%w%s", err, hints.ForInvalidPackage())
	case errors.Is(err, pptx2html.ErrConversionTimeout):
		return fmt.Errorf("%w%s", err, hints.ForTimeout())
	case errors.Is(err, pptx2html.ErrOutputWrite):
		return fmt.Errorf("%w%s", err, hints.ForOutputDirectory())
	default:
		return err
	}
}
