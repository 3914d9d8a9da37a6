// Package listing discovers files by extension under a root directory,
// pruning excluded directories, and reports their relative paths in a
// deterministic (extension, path) order.
package listing

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"filecat/pkg/exclude"

	"go.uber.org/zap"
)

// Options holds the configuration for a listing run.
type Options struct {
	Root       string           // Directory to scan; empty means the current directory.
	Extensions []string         // Filename suffixes to include, e.g. ".go". Nothing matches when empty.
	Excludes   *exclude.Matcher // Names to prune at any depth; nil excludes nothing.
}

// DefaultExcludes returns the built-in exclusion patterns for directories
// that almost never belong in a listing.
func DefaultExcludes() []string {
	return []string{
		// Version control
		".git", ".svn", ".hg",
		// Virtual environments
		".venv", "venv", "env",
		// Python cache and build
		"__pycache__", "build", "dist", "*.egg-info",
		// Node.js
		"node_modules",
		// IDE and editor
		".idea", ".vscode",
		// macOS
		".DS_Store",
		// Misc build/cache
		".cache", ".pytest_cache", ".mypy_cache", ".tox",
		// Rust
		"target",
		// Go
		"vendor",
	}
}

// Collect walks the root directory and returns the relative, slash-separated
// paths of all files whose names end in one of the requested extensions.
// Excluded directories are skipped entirely; access errors on entries below
// the root are logged and skipped, while a root that cannot be read is an
// error. The result is sorted by extension first, then by path.
func Collect(opts Options, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %s is not a directory", root)
	}

	logger.Debug("Starting file listing", zap.String("root", root), zap.Strings("extensions", opts.Extensions))

	var paths []string
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("cannot read root %s: %w", root, err)
			}
			logger.Warn("Error accessing path during traversal", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if opts.Excludes != nil && opts.Excludes.MatchesName(name) {
				logger.Debug("Skipping excluded directory", zap.String("directory", path))
				return filepath.SkipDir
			}
			return nil
		}

		if opts.Excludes != nil && opts.Excludes.MatchesName(name) {
			logger.Debug("Skipping excluded file", zap.String("file", path))
			return nil
		}
		if !hasAnyExtension(name, opts.Extensions) {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			logger.Warn("Unable to determine relative path", zap.String("path", path), zap.Error(relErr))
			return nil
		}
		paths = append(paths, filepath.ToSlash(relPath))
		return nil
	})
	if walkErr != nil {
		logger.Error("Error during file traversal", zap.Error(walkErr))
		return nil, walkErr
	}

	sortByExtension(paths)
	logger.Debug("Completed file listing", zap.Int("files", len(paths)))
	return paths, nil
}

// hasAnyExtension reports whether the file name ends in one of the suffixes.
func hasAnyExtension(name string, extensions []string) bool {
	for _, ext := range extensions {
		if ext != "" && strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// sortByExtension orders paths by extension first, then alphabetically.
func sortByExtension(paths []string) {
	sort.Slice(paths, func(i, j int) bool {
		extI, extJ := filepath.Ext(paths[i]), filepath.Ext(paths[j])
		if extI != extJ {
			return extI < extJ
		}
		return paths[i] < paths[j]
	})
}
