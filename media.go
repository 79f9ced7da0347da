package pptx2html

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// mediaKeyPrefix is the media part namespace inside a package. Any entry
// under it counts as media, regardless of extension or depth.
const mediaKeyPrefix = "ppt/media/"

// isMediaKey reports whether key belongs to the media part namespace.
// Directory placeholder entries are excluded.
func isMediaKey(key string) bool {
	return strings.HasPrefix(key, mediaKeyPrefix) && !strings.HasSuffix(key, "/")
}

// ExtractMedia writes every media entry of the package to destRoot/media/
// and returns the manifest of extracted assets. The media directory is
// created if absent. File names are the final path segment of each entry
// key; two entries reducing to the same name overwrite, last write wins.
// Manifest destination paths are absolute even when destRoot is relative.
// Per-asset writes run concurrently with a full join before returning.
//
// Extraction is independent of slide discovery: a package with media but no
// slides is a valid, non-error input.
func ExtractMedia(ctx context.Context, pkg *Package, destRoot string) ([]MediaAsset, error) {
	absRoot, err := filepath.Abs(destRoot)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving %q: %v", ErrOutputWrite, destRoot, err)
	}
	mediaDir := filepath.Join(absRoot, MediaDirName)
	if err := os.MkdirAll(mediaDir, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: creating %q: %v", ErrOutputWrite, mediaDir, err)
	}

	var keys []string
	for _, key := range pkg.Entries() {
		if isMediaKey(key) {
			keys = append(keys, key)
		}
	}

	assets := make([]MediaAsset, len(keys))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)
	for i, key := range keys {
		g.Go(func() error {
			data, err := pkg.ReadBytes(ctx, key)
			if err != nil {
				return err
			}

			name := path.Base(key)
			dest := filepath.Join(mediaDir, name)
			if err := os.WriteFile(dest, data, filePermissions); err != nil {
				return fmt.Errorf("%w: writing %q: %v", ErrOutputWrite, dest, err)
			}

			assets[i] = MediaAsset{
				SourceKey:       key,
				FileName:        name,
				DestinationPath: dest,
				RelativePath:    path.Join(MediaDirName, name),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].SourceKey < assets[j].SourceKey
	})
	return assets, nil
}
