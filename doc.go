// Package pptx2html converts PPTX presentations into self-contained HTML5
// slideshows with extracted media and a generated stylesheet.
//
// # Quick Start
//
// Create a service and convert a presentation into an output directory:
//
//	svc := pptx2html.New()
//
//	result, err := svc.Convert(ctx, pptx2html.Input{
//	    InputPath: "talk.pptx",
//	    OutputDir: "out/talk",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d slides, %d media files -> %s\n",
//	    result.Slides, result.MediaFiles, result.HTMLFile)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Package opening (the PPTX ZIP container, lazy entry reads)
//  2. Slide discovery and media extraction (concurrent, full join)
//  3. Slide rendering (one HTML fragment per slide, placeholder content)
//  4. Stylesheet synthesis (fixed presentation.css)
//  5. Document assembly (index.html with inline navigation script)
//
// Slide content is not interpreted: each slide renders as a numbered
// placeholder. The ordinal parsed from ppt/slides/slideN.xml is the sole
// guarantee of slide order in the output.
//
// # Output Layout
//
//	outputDir/
//	├── index.html            assembled presentation
//	├── presentation.css      fixed stylesheet
//	├── slide-<N>.html        one fragment per slide
//	└── media/<name>          extracted media entries
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := pptx2html.New(
//	    pptx2html.WithTimeout(time.Minute),
//	    pptx2html.WithLogger(logger),
//	)
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to bound concurrent conversions:
//
//	pool := pptx2html.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	result, err := svc.Convert(ctx, input)
package pptx2html
