// File: pkg/exclude/patterns.go
package exclude

import (
	"regexp"
	"strings"
)

// singleStarPattern is precompiled for wildcard conversion.
var singleStarPattern = regexp.MustCompile(`\*`)

// escapeSpecialChars escapes regex special characters except for '*' and '?'.
func escapeSpecialChars(pattern string) string {
	var specialChars = `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// wildcardToRegex converts wildcard patterns '*' and '?' to regex equivalents.
// A '*' never crosses a path separator, so component matching stays exact.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	pattern = strings.ReplaceAll(pattern, "?", ".")
	return pattern
}
