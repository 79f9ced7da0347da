package pptx2html

import "fmt"

// slideFragmentTemplate is the placeholder markup for one slide. The
// fragment is a function of the ordinal alone: slide content is not
// interpreted, so every slide renders as a numbered placeholder.
const slideFragmentTemplate = `<div class="slide-content">
  <h2>Slide %d</h2>
  <p>Slide content rendering is not yet supported.</p>
</div>
`

// RenderSlide maps a slide descriptor to its HTML fragment.
// Always succeeds given a valid descriptor; RawMarkup is ignored.
func RenderSlide(d SlideDescriptor) SlideFragment {
	return SlideFragment{
		Ordinal:    d.Ordinal,
		HTMLMarkup: fmt.Sprintf(slideFragmentTemplate, d.Ordinal),
	}
}

// RenderSlides maps every descriptor to its fragment, preserving order.
func RenderSlides(descriptors []SlideDescriptor) []SlideFragment {
	fragments := make([]SlideFragment, len(descriptors))
	for i, d := range descriptors {
		fragments[i] = RenderSlide(d)
	}
	return fragments
}

// FragmentFileName returns the per-slide artifact file name for an ordinal.
func FragmentFileName(ordinal int) string {
	return fmt.Sprintf("slide-%d.html", ordinal)
}
