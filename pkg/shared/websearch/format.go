package websearch

import (
	"fmt"
	"strings"
)

// FormatSources renders results as a numbered list of title, snippet, and
// link separated by blank lines. The text is embedded verbatim in prompts and
// appended to reports for transparency.
func FormatSources(results []Result) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("%d. %s\n%s\n%s", i+1, r.Title, r.Snippet, r.Link)
	}
	return strings.Join(parts, "\n\n")
}

// FormatSignals is FormatSources without links, used for demand signals where
// only the claim text matters.
func FormatSignals(results []Result) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("%d. %s\n%s", i+1, r.Title, r.Snippet)
	}
	return strings.Join(parts, "\n\n")
}
