package concat

import (
	"bytes"
	"unicode/utf8"
)

// isTextData reports whether content can be emitted as text. A NUL byte
// never appears in text input, and anything else must be well-formed UTF-8.
// Empty content counts as text.
func isTextData(content []byte) bool {
	if bytes.IndexByte(content, 0) != -1 {
		return false
	}
	return utf8.Valid(content)
}
