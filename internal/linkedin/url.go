package linkedin

import (
	"regexp"
	"strings"
)

// profilePathPatterns match the public profile path variants. The host
// check happens first, so these only need to pin the path shape.
var profilePathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`linkedin\.com/in/[\w\-]+`),
	regexp.MustCompile(`linkedin\.com/pub/[\w\-]+`),
	regexp.MustCompile(`www\.linkedin\.com/in/[\w\-]+`),
	regexp.MustCompile(`www\.linkedin\.com/pub/[\w\-]+`),
}

// ValidateProfileURL reports whether the given string looks like a public
// LinkedIn profile URL. Matching is case-insensitive and tolerant of
// surrounding whitespace.
func ValidateProfileURL(url string) bool {
	if url == "" {
		return false
	}

	url = strings.ToLower(strings.TrimSpace(url))
	if !strings.Contains(url, "linkedin.com") {
		return false
	}

	for _, pattern := range profilePathPatterns {
		if pattern.MatchString(url) {
			return true
		}
	}
	return false
}
