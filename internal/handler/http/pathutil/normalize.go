package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Pre-compiled so normalization stays cheap on the hot path.
var pathPatterns = []pathPattern{
	{pattern: regexp.MustCompile(`^/articles/\d+$`), template: "/articles/:id"},
	{pattern: regexp.MustCompile(`^/users/\d+$`), template: "/users/:id"},
}

// NormalizePath collapses ID-bearing paths to a template form
// (e.g. /articles/123 -> /articles/:id) so metrics label cardinality
// stays bounded. Static paths pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
