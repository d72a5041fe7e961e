// Package blackfriday renders pages to HTML using blackfriday.
package blackfriday

import (
	"html"
	"strings"

	"github.com/fwojciec/simplesearch"
	"github.com/russross/blackfriday/v2"
)

// Ensure Renderer implements simplesearch.Renderer at compile time.
var _ simplesearch.Renderer = (*Renderer)(nil)

// Renderer renders page segments from Markdown to HTML.
type Renderer struct {
	opts []blackfriday.Option
}

// NewRenderer creates a new Renderer with the common Markdown extensions.
func NewRenderer() *Renderer {
	return &Renderer{
		opts: []blackfriday.Option{
			blackfriday.WithExtensions(blackfriday.CommonExtensions),
		},
	}
}

// RenderPage renders the title and each segment in order. Every segment is
// wrapped in a section element named after the segment.
func (r *Renderer) RenderPage(page *simplesearch.Page) (string, error) {
	if page == nil {
		return "", simplesearch.Errorf(simplesearch.EINVALID, "page required")
	}

	var b strings.Builder
	b.WriteString("<article>\n")
	if page.Title != "" {
		b.WriteString("<h1>")
		b.WriteString(html.EscapeString(page.Title))
		b.WriteString("</h1>\n")
	}
	for _, seg := range page.Segments {
		b.WriteString(`<section class="segment`)
		if seg.Name != "" {
			b.WriteString(" segment-")
			b.WriteString(html.EscapeString(seg.Name))
		}
		b.WriteString("\">\n")
		b.Write(blackfriday.Run([]byte(seg.Content), r.opts...))
		b.WriteString("</section>\n")
	}
	b.WriteString("</article>\n")
	return b.String(), nil
}
