package pptx2html

// Notes:
// - parseSlideKey: tests ordinal extraction from the slide naming convention
// - isSlideKey: tests slide namespace filtering (rels and nested parts excluded)
// - DiscoverSlides: tests ordering, text reads, malformed keys, duplicate ordinals

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseSlideKey - Ordinal Extraction
// ---------------------------------------------------------------------------

func TestParseSlideKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		key         string
		wantOrdinal int
		wantErr     bool
	}{
		{
			name:        "first slide",
			key:         "ppt/slides/slide1.xml",
			wantOrdinal: 1,
		},
		{
			name:        "double digit ordinal",
			key:         "ppt/slides/slide42.xml",
			wantOrdinal: 42,
		},
		{
			name:    "no ordinal",
			key:     "ppt/slides/slide.xml",
			wantErr: true,
		},
		{
			name:    "non-numeric ordinal",
			key:     "ppt/slides/slideA.xml",
			wantErr: true,
		},
		{
			name:    "zero ordinal rejected",
			key:     "ppt/slides/slide0.xml",
			wantErr: true,
		},
		{
			name:    "unexpected file name",
			key:     "ppt/slides/notes1.xml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseSlideKey(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedSlideKey) {
					t.Errorf("parseSlideKey(%q) error = %v, want ErrMalformedSlideKey", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSlideKey(%q) error = %v", tt.key, err)
			}
			if got != tt.wantOrdinal {
				t.Errorf("parseSlideKey(%q) = %d, want %d", tt.key, got, tt.wantOrdinal)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsSlideKey - Namespace Filtering
// ---------------------------------------------------------------------------

func TestIsSlideKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "canonical slide", key: "ppt/slides/slide1.xml", want: true},
		{name: "malformed slide name still in namespace", key: "ppt/slides/slideX.xml", want: true},
		{name: "relationship part excluded", key: "ppt/slides/_rels/slide1.xml.rels", want: false},
		{name: "nested part excluded", key: "ppt/slides/sub/slide1.xml", want: false},
		{name: "media entry", key: "ppt/media/image1.png", want: false},
		{name: "presentation part", key: "ppt/presentation.xml", want: false},
		{name: "wrong extension", key: "ppt/slides/slide1.rels", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := isSlideKey(tt.key); got != tt.want {
				t.Errorf("isSlideKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDiscoverSlides - Discovery Pass
// ---------------------------------------------------------------------------

func TestDiscoverSlides(t *testing.T) {
	t.Parallel()

	t.Run("descriptors sorted ascending by ordinal", func(t *testing.T) {
		t.Parallel()

		pkg := mustOpenPackage(t, map[string][]byte{
			"ppt/slides/slide3.xml": []byte("<c/>"),
			"ppt/slides/slide1.xml": []byte("<a/>"),
			"ppt/slides/slide2.xml": []byte("<b/>"),
			"ppt/media/image1.png":  {0x01},
		})

		descriptors, err := DiscoverSlides(context.Background(), pkg)
		if err != nil {
			t.Fatalf("DiscoverSlides() error = %v", err)
		}

		if len(descriptors) != 3 {
			t.Fatalf("DiscoverSlides() returned %d descriptors, want 3", len(descriptors))
		}
		wantMarkup := []string{"<a/>", "<b/>", "<c/>"}
		for i, d := range descriptors {
			if d.Ordinal != i+1 {
				t.Errorf("descriptor[%d].Ordinal = %d, want %d", i, d.Ordinal, i+1)
			}
			if d.RawMarkup != wantMarkup[i] {
				t.Errorf("descriptor[%d].RawMarkup = %q, want %q", i, d.RawMarkup, wantMarkup[i])
			}
		}
	})

	t.Run("non-contiguous ordinals preserved", func(t *testing.T) {
		t.Parallel()

		pkg := mustOpenPackage(t, map[string][]byte{
			"ppt/slides/slide10.xml": []byte("<j/>"),
			"ppt/slides/slide2.xml":  []byte("<b/>"),
		})

		descriptors, err := DiscoverSlides(context.Background(), pkg)
		if err != nil {
			t.Fatalf("DiscoverSlides() error = %v", err)
		}
		if descriptors[0].Ordinal != 2 || descriptors[1].Ordinal != 10 {
			t.Errorf("ordinals = [%d, %d], want [2, 10]", descriptors[0].Ordinal, descriptors[1].Ordinal)
		}
	})

	t.Run("malformed slide key fails discovery", func(t *testing.T) {
		t.Parallel()

		pkg := mustOpenPackage(t, map[string][]byte{
			"ppt/slides/slide1.xml":    []byte("<a/>"),
			"ppt/slides/slideoops.xml": []byte("<x/>"),
		})

		_, err := DiscoverSlides(context.Background(), pkg)
		if !errors.Is(err, ErrMalformedSlideKey) {
			t.Errorf("DiscoverSlides() error = %v, want ErrMalformedSlideKey", err)
		}
	})

	t.Run("relationship parts ignored", func(t *testing.T) {
		t.Parallel()

		pkg := mustOpenPackage(t, map[string][]byte{
			"ppt/slides/slide1.xml":            []byte("<a/>"),
			"ppt/slides/_rels/slide1.xml.rels": []byte("<rels/>"),
		})

		descriptors, err := DiscoverSlides(context.Background(), pkg)
		if err != nil {
			t.Fatalf("DiscoverSlides() error = %v", err)
		}
		if len(descriptors) != 1 {
			t.Errorf("DiscoverSlides() returned %d descriptors, want 1", len(descriptors))
		}
	})

	t.Run("zero slides is valid", func(t *testing.T) {
		t.Parallel()

		pkg := mustOpenPackage(t, map[string][]byte{
			"ppt/media/image1.png": {0x01},
		})

		descriptors, err := DiscoverSlides(context.Background(), pkg)
		if err != nil {
			t.Fatalf("DiscoverSlides() error = %v", err)
		}
		if len(descriptors) != 0 {
			t.Errorf("DiscoverSlides() returned %d descriptors, want 0", len(descriptors))
		}
	})
}

func TestDiscoverSlidesDuplicateOrdinal(t *testing.T) {
	t.Parallel()

	// ZIP allows two entries with the same name; both appear in the
	// directory table and parse to the same ordinal.
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, content := range []string{"<a/>", "<b/>"} {
		f, err := w.Create("ppt/slides/slide1.xml")
		if err != nil {
			t.Fatalf("creating zip entry: %v", err)
		}
		if _, err := f.Write([]byte(content)); err != nil {
			t.Fatalf("writing zip entry: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zip writer: %v", err)
	}

	pkg, err := OpenPackage(buf.Bytes())
	if err != nil {
		t.Fatalf("OpenPackage() error = %v", err)
	}

	_, err = DiscoverSlides(context.Background(), pkg)
	if !errors.Is(err, ErrDuplicateOrdinal) {
		t.Errorf("DiscoverSlides() error = %v, want ErrDuplicateOrdinal", err)
	}
}
