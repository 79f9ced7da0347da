package pptx2html

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// zipMethodZstd is the ZIP compression method ID for Zstandard (APPNOTE 6.3.7).
// Some modern archivers emit OOXML packages with zstd-compressed entries;
// registering a decompressor lets those packages open transparently.
const zipMethodZstd uint16 = 93

func init() {
	zip.RegisterDecompressor(zipMethodZstd, func(r io.Reader) io.ReadCloser {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return io.NopCloser(&errorReader{err: err})
		}
		return zr.IOReadCloser()
	})
}

// errorReader always fails with a fixed error. Used when a decompressor
// cannot be constructed, so the failure surfaces on first read.
type errorReader struct {
	err error
}

func (r *errorReader) Read([]byte) (int, error) { return 0, r.err }

// Package is an opened presentation container. It owns the decoded entry
// table for the lifetime of one conversion; entry bytes are decompressed
// lazily, only when requested.
type Package struct {
	reader  *zip.Reader
	entries map[string]*zip.File
	names   []string
}

// OpenPackage opens a package from in-memory archive bytes.
// Returns ErrInvalidContainer if the bytes are not a valid ZIP archive.
func OpenPackage(data []byte) (*Package, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContainer, err)
	}

	pkg := &Package{
		reader:  reader,
		entries: make(map[string]*zip.File, len(reader.File)),
		names:   make([]string, 0, len(reader.File)),
	}
	for _, f := range reader.File {
		pkg.entries[f.Name] = f
		pkg.names = append(pkg.names, f.Name)
	}
	return pkg, nil
}

// OpenPackageFile reads the file at path and opens it as a package.
func OpenPackageFile(path string) (*Package, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- caller-provided input path
	if err != nil {
		return nil, fmt.Errorf("reading package file %q: %w", path, err)
	}
	return OpenPackage(data)
}

// Entries returns the entry keys in archive directory order.
func (p *Package) Entries() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// ReadBytes reads and decompresses the entry with the given key.
// Returns ErrEntryNotFound if the key is absent.
func (p *Package) ReadBytes(ctx context.Context, key string) ([]byte, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	f, ok := p.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, key)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening entry %q: %w", key, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading entry %q: %w", key, err)
	}
	return data, nil
}

// ReadText reads the entry with the given key as a UTF-8 string.
// Returns ErrEntryNotFound if the key is absent.
func (p *Package) ReadText(ctx context.Context, key string) (string, error) {
	data, err := p.ReadBytes(ctx, key)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
