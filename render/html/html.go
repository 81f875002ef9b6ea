// Package html renders a metrics report as a standalone HTML page styled
// with Tailwind CSS v4 (CDN). The report body is the markdown document from
// render/report, converted through goldmark with GFM tables and syntax
// highlighting enabled.
package html

import (
	"bytes"
	"embed"
	"html/template"
	"io"

	"github.com/sonnes/ganaka/core"
	"github.com/sonnes/ganaka/render/report"
	"github.com/sonnes/ganaka/stats"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a report to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax
// highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	tmpl := template.Must(template.ParseFS(content, "templates/*.html"))

	return &Renderer{md: md, tmpl: tmpl}
}

// pageData is the template data passed to page.html.
type pageData struct {
	GeneratedAt string
	Body        template.HTML
}

// Render writes the report as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, rep *stats.Report) error {
	var body bytes.Buffer
	if err := r.md.Convert([]byte(report.Markdown(rep)), &body); err != nil {
		return err
	}

	return r.tmpl.ExecuteTemplate(w, "page.html", pageData{
		GeneratedAt: core.LocalISO(rep.GeneratedAt),
		Body:        template.HTML(body.String()),
	})
}
