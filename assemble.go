package pptx2html

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

// documentTemplate is the assembled presentation document. Each fragment is
// wrapped in a slide element tagged with its ordinal; the first slide is
// marked active. The inline script keeps the deck state in an explicit
// object rather than bare globals, initialized to slide 0.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Presentation</title>
<link rel="stylesheet" href="{{.CSSHref}}">
</head>
<body>
<div class="presentation" id="presentation">
{{- range $i, $f := .Fragments}}
<div class="slide{{if eq $i 0}} active{{end}}" data-slide="{{$f.Ordinal}}">
{{$f.Markup}}</div>
{{- end}}
</div>
<div class="slide-indicator"><span id="current">{{.InitialCurrent}}</span> / {{.Total}}</div>
<div class="nav-controls">
<button id="prev" type="button">Previous</button>
<button id="next" type="button">Next</button>
</div>
<script>
(function () {
  var deck = {
    index: 0,
    slides: document.querySelectorAll('.slide'),
    current: document.getElementById('current'),
    prev: document.getElementById('prev'),
    next: document.getElementById('next')
  };

  function showSlide(i) {
    if (i < 0 || i >= deck.slides.length) return;
    deck.slides[deck.index].classList.remove('active');
    deck.index = i;
    deck.slides[deck.index].classList.add('active');
    deck.current.textContent = String(deck.index + 1);
    deck.prev.disabled = deck.index === 0;
    deck.next.disabled = deck.index === deck.slides.length - 1;
  }

  deck.prev.addEventListener('click', function () { showSlide(deck.index - 1); });
  deck.next.addEventListener('click', function () { showSlide(deck.index + 1); });

  document.addEventListener('keydown', function (e) {
    if (e.key === 'ArrowRight' || e.key === ' ') {
      showSlide(deck.index + 1);
    } else if (e.key === 'ArrowLeft') {
      showSlide(deck.index - 1);
    }
  });

  if (deck.slides.length > 0) {
    showSlide(0);
  } else {
    deck.prev.disabled = true;
    deck.next.disabled = true;
  }
})();
</script>
</body>
</html>
`

// documentData feeds the document template.
type documentData struct {
	CSSHref        string
	Fragments      []documentFragment
	InitialCurrent int
	Total          int
}

// documentFragment pairs an ordinal with its pre-rendered markup.
// Markup is template.HTML because fragments are generated by this package,
// never taken from package content.
type documentFragment struct {
	Ordinal int
	Markup  template.HTML
}

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

// AssemblePresentation combines the ordered fragments, the stylesheet
// reference, and the inline navigation script into one document, writes it
// to outputDir/index.html, and returns the written path. Zero fragments
// produce an empty deck with the indicator total at 0.
func AssemblePresentation(fragments []SlideFragment, cssHref, outputDir string) (string, error) {
	data := documentData{
		CSSHref:   cssHref,
		Fragments: make([]documentFragment, len(fragments)),
		Total:     len(fragments),
	}
	if len(fragments) > 0 {
		data.InitialCurrent = 1
	}
	for i, f := range fragments {
		data.Fragments[i] = documentFragment{
			Ordinal: f.Ordinal,
			Markup:  template.HTML(f.HTMLMarkup), // #nosec G203 -- fragments are generated, not user input
		}
	}

	var buf bytes.Buffer
	if err := documentTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering document: %w", err)
	}

	dest := filepath.Join(outputDir, IndexFileName)
	if err := os.WriteFile(dest, buf.Bytes(), filePermissions); err != nil {
		return "", fmt.Errorf("%w: writing %q: %v", ErrOutputWrite, dest, err)
	}
	return dest, nil
}
