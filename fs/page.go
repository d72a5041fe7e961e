// Package fs provides file-based storage for site pages.
//
// A site directory holds one subdirectory per collection (pages/, posts/).
// Each page is a Markdown file with YAML front matter followed by one or more
// segments. Content before the first marker belongs to the "default" segment;
// a line of the form "--- name ---" starts a new segment.
package fs

import (
	"bytes"
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/simplesearch"
	"gopkg.in/yaml.v3"
)

// DefaultSegment names the segment that precedes any segment marker.
const DefaultSegment = "default"

// frontMatterDelim separates front matter from content.
const frontMatterDelim = "---"

var segmentMarker = regexp.MustCompile(`^---\s*([A-Za-z0-9_-]+)\s*---\s*$`)

// frontMatter holds the recognized front matter keys.
type frontMatter struct {
	Title    string `yaml:"title"`
	Route    string `yaml:"route,omitempty"`
	NoSearch bool   `yaml:"no_search,omitempty"`
}

// ParseDocument parses a page file stored at relPath, a slash-separated path
// relative to the site root whose first element names the collection.
// The returned document carries its segments.
func ParseDocument(relPath string, data []byte) (*simplesearch.Document, error) {
	fm, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", relPath, err)
	}

	collection, _, _ := strings.Cut(relPath, "/")
	route := fm.Route
	if route == "" {
		route = PathToRoute(relPath)
	}

	return &simplesearch.Document{
		ID:                documentID(relPath),
		Collection:        simplesearch.Collection(collection),
		Path:              relPath,
		Route:             route,
		Title:             fm.Title,
		ExcludeFromSearch: fm.NoSearch,
		Segments:          parseSegments(body),
	}, nil
}

// documentID derives a stable ID from the document path.
func documentID(relPath string) string {
	return strconv.FormatUint(xxhash.Sum64String(relPath), 16)
}

// splitFrontMatter separates YAML front matter from the page body.
// Files without front matter have an empty title.
func splitFrontMatter(data []byte) (frontMatter, string, error) {
	var fm frontMatter

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	if !strings.HasPrefix(text, frontMatterDelim+"\n") {
		return fm, text, nil
	}

	rest := text[len(frontMatterDelim)+1:]
	end := strings.Index(rest, "\n"+frontMatterDelim+"\n")
	var header, body string
	switch {
	case end >= 0:
		header, body = rest[:end], rest[end+len(frontMatterDelim)+2:]
	case strings.HasSuffix(rest, "\n"+frontMatterDelim):
		header = strings.TrimSuffix(rest, "\n"+frontMatterDelim)
	default:
		return fm, "", simplesearch.Errorf(simplesearch.EINVALID, "unterminated front matter")
	}

	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return fm, "", simplesearch.Errorf(simplesearch.EINVALID, "invalid front matter: %v", err)
	}
	return fm, body, nil
}

// parseSegments splits body on segment markers. An empty default segment is
// dropped when named segments follow it.
func parseSegments(body string) []simplesearch.Segment {
	var segments []simplesearch.Segment
	current := simplesearch.Segment{Name: DefaultSegment}
	var buf strings.Builder

	flush := func() {
		current.Content = buf.String()
		buf.Reset()
		if current.Name == DefaultSegment && len(segments) == 0 && strings.TrimSpace(current.Content) == "" {
			return
		}
		segments = append(segments, current)
	}

	for _, line := range strings.SplitAfter(body, "\n") {
		if m := segmentMarker.FindStringSubmatch(strings.TrimRight(line, "\n")); m != nil {
			flush()
			current = simplesearch.Segment{Name: m[1]}
			continue
		}
		buf.WriteString(line)
	}
	flush()

	return segments
}

// FormatDocument formats a document as a page file with YAML front matter.
func FormatDocument(doc *simplesearch.Document) ([]byte, error) {
	header, err := yaml.Marshal(frontMatter{
		Title:    doc.Title,
		Route:    doc.Route,
		NoSearch: doc.ExcludeFromSearch,
	})
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(frontMatterDelim + "\n")
	b.Write(header)
	b.WriteString(frontMatterDelim + "\n")
	for i, seg := range doc.Segments {
		if i > 0 || seg.Name != DefaultSegment {
			b.WriteString("--- " + seg.Name + " ---\n")
		}
		b.WriteString(seg.Content)
		if seg.Content != "" && !strings.HasSuffix(seg.Content, "\n") {
			b.WriteString("\n")
		}
	}
	return b.Bytes(), nil
}

// PathToRoute derives a route from a page path relative to the site root.
// Example: pages/docs/index.md → docs, posts/hello.md → blog/hello
func PathToRoute(p string) string {
	collection, rest, _ := strings.Cut(p, "/")
	rest = strings.TrimSuffix(rest, path.Ext(rest))
	if rest == "index" {
		rest = ""
	}
	rest = strings.TrimSuffix(rest, "/index")

	if simplesearch.Collection(collection) == simplesearch.CollectionPosts {
		return path.Join("blog", rest)
	}
	return rest
}
