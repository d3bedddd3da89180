package meeting

import (
	"regexp"
	"strings"
)

// urlToken matches http(s) URLs up to whitespace, quotes or brackets.
var urlToken = regexp.MustCompile(`(?i)https?://[^\s"'<>()\[\]{}]+`)

// ExtractURLs returns the http(s) URLs found in text, in order of appearance.
// Trailing sentence punctuation is not treated as part of a URL.
func ExtractURLs(text string) []string {
	if text == "" {
		return nil
	}
	found := urlToken.FindAllString(text, -1)
	urls := make([]string, 0, len(found))
	for _, u := range found {
		u = strings.TrimRight(u, ".,;:!?")
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
