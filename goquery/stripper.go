// Package goquery provides HTML processing implementations using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/simplesearch"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Stripper implements simplesearch.TagStripper at compile time.
var _ simplesearch.TagStripper = (*Stripper)(nil)

// nonContent lists elements whose text never reaches the stripped output.
var nonContent = []atom.Atom{atom.Script, atom.Style, atom.Noscript, atom.Template}

// Stripper removes markup from rendered HTML, leaving its text content.
// Script and style elements are dropped entirely; entities are decoded.
type Stripper struct {
	selector string
}

// NewStripper creates a new Stripper.
func NewStripper() *Stripper {
	names := make([]string, len(nonContent))
	for i, a := range nonContent {
		names[i] = a.String()
	}
	return &Stripper{selector: strings.Join(names, ", ")}
}

// StripTags returns the text content of html.
func (s *Stripper) StripTags(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return "", simplesearch.Errorf(simplesearch.EINVALID, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	doc.Find(s.selector).Remove()

	return doc.Text(), nil
}
