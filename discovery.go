package pptx2html

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Slide part naming convention inside a package.
const (
	slideKeyPrefix = "ppt/slides/"
	slideKeySuffix = ".xml"
)

// slideKeyRE captures the ordinal from a canonical slide key.
var slideKeyRE = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// maxConcurrentReads bounds per-entry fan-out within one discovery or
// extraction pass.
const maxConcurrentReads = 8

// parseSlideKey extracts the ordinal from a slide entry key.
// Returns ErrMalformedSlideKey when the key sits in the slide namespace but
// carries no parseable ordinal. A corrupt package must not produce a
// partial slideshow, so callers treat this as fatal rather than skipping.
func parseSlideKey(key string) (int, error) {
	m := slideKeyRE.FindStringSubmatch(key)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSlideKey, key)
	}
	ordinal, err := strconv.Atoi(m[1])
	if err != nil || ordinal < 1 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedSlideKey, key)
	}
	return ordinal, nil
}

// isSlideKey reports whether key belongs to the slide part namespace.
// Relationship parts (ppt/slides/_rels/...) are not slide parts.
func isSlideKey(key string) bool {
	if !strings.HasPrefix(key, slideKeyPrefix) || !strings.HasSuffix(key, slideKeySuffix) {
		return false
	}
	return !strings.Contains(strings.TrimPrefix(key, slideKeyPrefix), "/")
}

// DiscoverSlides scans the package for slide parts and returns descriptors
// sorted ascending by ordinal. Entry text is read concurrently with a full
// join before returning. A slide key without a parseable ordinal fails with
// ErrMalformedSlideKey; two keys parsing to the same ordinal fail with
// ErrDuplicateOrdinal. A package with zero slide parts yields an empty,
// non-error result.
func DiscoverSlides(ctx context.Context, pkg *Package) ([]SlideDescriptor, error) {
	var keys []string
	for _, key := range pkg.Entries() {
		if isSlideKey(key) {
			keys = append(keys, key)
		}
	}

	descriptors := make([]SlideDescriptor, len(keys))
	seen := make(map[int]string, len(keys))

	for i, key := range keys {
		ordinal, err := parseSlideKey(key)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[ordinal]; ok {
			return nil, fmt.Errorf("%w: %d (%q and %q)", ErrDuplicateOrdinal, ordinal, prev, key)
		}
		seen[ordinal] = key
		descriptors[i] = SlideDescriptor{Ordinal: ordinal, SourceKey: key}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i := range descriptors {
		g.Go(func() error {
			markup, err := pkg.ReadText(ctx, descriptors[i].SourceKey)
			if err != nil {
				return err
			}
			descriptors[i].RawMarkup = markup
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(descriptors, func(i, j int) bool {
		return descriptors[i].Ordinal < descriptors[j].Ordinal
	})
	return descriptors, nil
}
