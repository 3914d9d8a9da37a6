// Package exclude matches file and directory names against gitignore-style
// exclusion patterns. Patterns apply to a single path component: literal
// names, '*' and '?' wildcards, '#' comments, and a leading '!' for negation.
// Later patterns win, so a negation can re-include a name excluded earlier.
package exclude

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Pattern encapsulates a compiled regular expression pattern,
// a negation flag, and metadata about the pattern's origin.
type Pattern struct {
	Pattern *regexp.Regexp // Compiled regular expression for the pattern.
	Negate  bool           // Indicates if the pattern is a negation (starts with '!').
	Line    string         // Original pattern line.
	LineNo  int            // Position in the matcher (1-based).
}

// Matcher represents an ordered collection of exclusion patterns.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewMatcher initializes a Matcher with an optional logger.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{
		patterns: []*Pattern{},
		logger:   logger,
	}
}

// Add compiles a set of pattern lines and appends them to the matcher.
// Empty lines, comments, and patterns that fail to compile are skipped.
func (m *Matcher) Add(lines ...string) {
	for _, line := range lines {
		pattern, negate := parsePatternLine(line, m.logger)
		if pattern == nil {
			continue
		}
		p := &Pattern{
			Pattern: pattern,
			Negate:  negate,
			Line:    line,
			LineNo:  len(m.patterns) + 1,
		}
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled exclusion pattern",
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// Len reports the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// MatchesName checks if a single path component matches the exclusion patterns.
func (m *Matcher) MatchesName(name string) bool {
	matches, _ := m.MatchesNameWithPattern(name)
	return matches
}

// MatchesNameWithPattern checks a single path component against every pattern
// in order and returns the outcome together with the last pattern that
// matched. Negated patterns flip the outcome back to included.
func (m *Matcher) MatchesNameWithPattern(name string) (bool, *Pattern) {
	matched := false
	var matchedPattern *Pattern

	for _, pattern := range m.patterns {
		if pattern.Pattern.MatchString(name) {
			matchedPattern = pattern
			matched = !pattern.Negate
		}
	}

	return matched, matchedPattern
}

// MatchesPath checks if any component of a slash- or OS-separated relative
// path matches the exclusion patterns, so a file is excluded whenever one of
// its parent directories is.
func (m *Matcher) MatchesPath(relPath string) bool {
	normalized := filepath.ToSlash(relPath)
	for _, part := range strings.Split(normalized, "/") {
		if part == "" || part == "." {
			continue
		}
		if m.MatchesName(part) {
			return true
		}
	}
	return false
}

// parsePatternLine processes a single pattern line and returns a compiled
// regular expression and a negation flag. Returns nil if the line is a
// comment or empty.
func parsePatternLine(line string, logger *zap.Logger) (*regexp.Regexp, bool) {
	trimmedLine := strings.TrimSpace(line)

	// Ignore empty lines and comments
	if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
		return nil, false
	}

	// Handle negation
	negate := false
	if strings.HasPrefix(trimmedLine, "!") {
		negate = true
		trimmedLine = strings.TrimPrefix(trimmedLine, "!")
	}

	// Handle escaped '#' and '!' so they can be matched literally.
	if strings.HasPrefix(trimmedLine, `\#`) || strings.HasPrefix(trimmedLine, `\!`) {
		trimmedLine = trimmedLine[1:]
	}

	// Escape special characters, then convert wildcards to regex equivalents.
	regexPattern := escapeSpecialChars(trimmedLine)
	regexPattern = wildcardToRegex(regexPattern)

	// Anchor the pattern to match the entire component.
	compiledRegex, err := regexp.Compile("^" + regexPattern + "$")
	if err != nil {
		logger.Error("Invalid exclusion pattern",
			zap.String("pattern", trimmedLine),
			zap.Error(err))
		return nil, false
	}

	return compiledRegex, negate
}
