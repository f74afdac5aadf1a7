package services

import (
	"regexp"
	"strings"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugNonWord  = regexp.MustCompile(`[^\w-]+`)
	slugCollapse = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL slug from a job title: lowercase, whitespace to
// hyphens, "&" to "-and-", strip anything that is not a word character or a
// hyphen, then collapse runs of hyphens.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = strings.ReplaceAll(s, "&", "-and-")
	s = slugNonWord.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return s
}
