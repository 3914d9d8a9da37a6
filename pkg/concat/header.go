// File: pkg/concat/header.go
package concat

import (
	"fmt"
	"io"
)

// blockTemplate is the delimiter block written for every successfully read
// input. The path appears exactly as the caller supplied it, and the content
// bytes sit verbatim between the START and END lines. Changing this template
// changes the output format for every consumer, so treat it as frozen.
const blockTemplate = "\n\n=== START: %s ===\n\n%s\n\n=== END: %s ===\n\n"

// RenderBlock formats the delimiter block for a single input.
func RenderBlock(path string, content []byte) string {
	return fmt.Sprintf(blockTemplate, path, content, path)
}

func writeBlock(w io.Writer, path string, content []byte) error {
	_, err := io.WriteString(w, RenderBlock(path, content))
	return err
}
