package capability

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"
)

// deckTemplate renders a minimal standalone HTML slide deck. One
// <section> per slide; the theme becomes a CSS class on the body.
const deckTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body class="deck {{.Theme}} {{.Style}}">
<section class="slide title-slide"><h1>{{.Title}}</h1></section>
{{range .Slides}}<section class="slide"><p>{{.}}</p></section>
{{end}}</body>
</html>
`

// Presentation generates HTML slide decks from a title and a list of
// slide contents.
type Presentation struct {
	tmpl   *template.Template
	logger *slog.Logger
}

// NewPresentation creates a presentation adapter.
func NewPresentation(logger *slog.Logger) *Presentation {
	return &Presentation{
		tmpl:   template.Must(template.New("deck").Parse(deckTemplate)),
		logger: logger.With("capability", "presentation"),
	}
}

// Execute generates a deck titled with the command string. Options:
// content (list of slide body strings), style (default "professional"),
// theme (default "default").
func (p *Presentation) Execute(ctx context.Context, command string, options map[string]any) (map[string]any, error) {
	slides := stringSliceOption(options, "content")
	style := stringOption(options, "style", "professional")
	theme := stringOption(options, "theme", "default")

	p.logger.Info("generating presentation", "title", command, "slides", len(slides))

	var buf bytes.Buffer
	err := p.tmpl.Execute(&buf, struct {
		Title  string
		Slides []string
		Style  string
		Theme  string
	}{
		Title:  command,
		Slides: slides,
		Style:  style,
		Theme:  theme,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render presentation: %w", err)
	}

	return map[string]any{
		"type":        "presentation",
		"title":       command,
		"format":      "html",
		"style":       style,
		"theme":       theme,
		"slide_count": len(slides) + 1,
		"document":    buf.String(),
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}, nil
}
