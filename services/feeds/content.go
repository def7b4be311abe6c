package feeds

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors tried in order. Marketplace entries wrap the external product link in a span.
var productLinkSelectors = []string{"span > a[href]", "a[href]"}

// extractProductURL returns the product link embedded in an entry body, or "" when there is none.
func extractProductURL(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	for _, selector := range productLinkSelectors {
		if href, ok := doc.Find(selector).First().Attr("href"); ok {
			return strings.TrimSpace(href)
		}
	}

	return ""
}
