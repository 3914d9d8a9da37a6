package listing

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"filecat/pkg/exclude"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// writeFixture creates the given relative-path files under dir.
func writeFixture(t *testing.T, dir string, files []string) {
	t.Helper()
	for _, rel := range files {
		absPath := filepath.Join(dir, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(absPath), 0o755))
		require.NoError(t, os.WriteFile(absPath, []byte("x\n"), 0o644))
	}
}

func defaultMatcher(t *testing.T, extra ...string) *exclude.Matcher {
	t.Helper()
	m := exclude.NewMatcher(zaptest.NewLogger(t))
	m.Add(DefaultExcludes()...)
	m.Add(extra...)
	return m
}

func TestCollect(t *testing.T) {
	fixture := []string{
		"main.go",
		"README.md",
		"docs/guide.md",
		"pkg/concat/concat.go",
		"scripts/tool.py",
		"noextension",
		"node_modules/left-pad/index.js",
		".git/config",
		"build/out.go",
		"filecat.egg-info/PKG-INFO",
	}

	tests := []struct {
		name       string
		extensions []string
		extra      []string
		want       []string
	}{
		{
			name:       "go_and_md_with_default_excludes",
			extensions: []string{".go", ".md"},
			want:       []string{"main.go", "pkg/concat/concat.go", "README.md", "docs/guide.md"},
		},
		{
			name:       "omit_dirs_prunes_more",
			extensions: []string{".go", ".md"},
			extra:      []string{"docs"},
			want:       []string{"main.go", "pkg/concat/concat.go", "README.md"},
		},
		{
			name:       "python_only",
			extensions: []string{".py"},
			want:       []string{"scripts/tool.py"},
		},
		{
			name:       "negation_reincludes_build",
			extensions: []string{".go"},
			extra:      []string{"!build"},
			want:       []string{"build/out.go", "main.go", "pkg/concat/concat.go"},
		},
		{
			name:       "no_extensions_matches_nothing",
			extensions: nil,
			want:       nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFixture(t, tmpDir, fixture)

			got, err := Collect(Options{
				Root:       tmpDir,
				Extensions: tc.extensions,
				Excludes:   defaultMatcher(t, tc.extra...),
			}, zaptest.NewLogger(t))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCollectMissingRoot(t *testing.T) {
	_, err := Collect(Options{
		Root:       filepath.Join(t.TempDir(), "nope"),
		Extensions: []string{".go"},
	}, zaptest.NewLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot access root")
}

func TestCollectUnreadableRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows permissions semantics differ")
	}
	if os.Getuid() == 0 {
		t.Skip("running as root bypasses permission checks")
	}

	root := filepath.Join(t.TempDir(), "sealed")
	require.NoError(t, os.Mkdir(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("x\n"), 0o644))

	// Searchable but not readable: stat succeeds, reading entries fails.
	require.NoError(t, os.Chmod(root, 0o311))
	t.Cleanup(func() {
		_ = os.Chmod(root, 0o755)
	})

	_, err := Collect(Options{Root: root, Extensions: []string{".go"}}, zaptest.NewLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot read root")
}

func TestCollectRootIsFile(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "plain.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := Collect(Options{Root: file, Extensions: []string{".txt"}}, zaptest.NewLogger(t))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")
}

func TestCollectNilMatcher(t *testing.T) {
	tmpDir := t.TempDir()
	writeFixture(t, tmpDir, []string{"a.go", "vendor/b.go"})

	got, err := Collect(Options{Root: tmpDir, Extensions: []string{".go"}}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, []string{"a.go", "vendor/b.go"}, got)
}

func TestRenderTree(t *testing.T) {
	paths := []string{"a.go", "sub/c.go", "b.md"}

	want := "root/\n" +
		"├── sub/\n" +
		"│   └── c.go\n" +
		"├── a.go\n" +
		"└── b.md\n"
	require.Equal(t, want, RenderTree("root", paths))
}

func TestRenderTreeDeepNesting(t *testing.T) {
	want := "root/\n" +
		"└── x/\n" +
		"    └── y/\n" +
		"        └── z.go\n"
	require.Equal(t, want, RenderTree("root", []string{"x/y/z.go"}))
}

func TestRenderTreeEmpty(t *testing.T) {
	require.Equal(t, "root/\n", RenderTree("root", nil))
}
