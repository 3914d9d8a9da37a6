package concat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderBlock(t *testing.T) {
	got := RenderBlock("notes.txt", []byte("first line\nsecond line\n"))
	want := "\n\n=== START: notes.txt ===\n\nfirst line\nsecond line\n\n\n=== END: notes.txt ===\n\n"
	require.Equal(t, want, got)
}

func TestRenderBlockEmptyContent(t *testing.T) {
	got := RenderBlock("empty.txt", nil)
	require.Equal(t, "\n\n=== START: empty.txt ===\n\n\n\n=== END: empty.txt ===\n\n", got)
}

func TestRenderBlockEchoesPathVerbatim(t *testing.T) {
	// Paths are not cleaned or resolved, so whatever the caller passed shows
	// up in both delimiter lines.
	for _, path := range []string{"./a.txt", "../up/one.txt", "dir//double.txt", "with space.txt"} {
		got := RenderBlock(path, []byte("x"))
		want := "\n\n=== START: " + path + " ===\n\nx\n\n=== END: " + path + " ===\n\n"
		require.Equal(t, want, got)
	}
}
