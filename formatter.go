package simplesearch

import (
	"fmt"
	"strings"
)

// FormatResults formats search results for terminal display.
// Each result shows its title and route; the path stands in for a missing route.
func FormatResults(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	var b strings.Builder
	for i, doc := range docs {
		location := doc.Route
		if location == "" {
			location = doc.Path
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%3d. %s\n     %s", i+1, doc.Title, location)
	}
	return b.String()
}
