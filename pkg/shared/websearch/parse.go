package websearch

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// parseResults extracts result blocks from the DuckDuckGo HTML page. Blocks
// without a title are skipped; link and snippet may be empty.
func parseResults(r io.Reader) ([]Result, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var results []Result
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		titleLink := sel.Find("a.result__a").First()
		title := strings.TrimSpace(titleLink.Text())
		if title == "" {
			return true
		}
		link, _ := titleLink.Attr("href")
		snippet := strings.TrimSpace(sel.Find("a.result__snippet").First().Text())
		results = append(results, Result{
			Title:   title,
			Link:    link,
			Snippet: snippet,
		})
		return len(results) < maxResults
	})
	return results, nil
}
