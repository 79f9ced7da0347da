package pptx2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInputPath = errors.New("input path cannot be empty")
	ErrEmptyOutputDir = errors.New("output directory cannot be empty")

	// Container errors.
	ErrInvalidContainer = errors.New("input is not a valid package archive")
	ErrEntryNotFound    = errors.New("package entry not found")

	// Slide discovery errors.
	ErrMalformedSlideKey = errors.New("slide entry name has no parseable ordinal")
	ErrDuplicateOrdinal  = errors.New("duplicate slide ordinal")

	// Generation errors.
	ErrOutputWrite = errors.New("output write failed")

	// Orchestration errors.
	ErrConversionFailed  = errors.New("conversion failed")
	ErrConversionTimeout = errors.New("conversion timed out")
)
