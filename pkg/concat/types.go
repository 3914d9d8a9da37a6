// File: pkg/concat/types.go
package concat

import (
	"errors"
	"io"
)

// Request describes one concatenation run.
type Request struct {
	Inputs []string  // Input file paths, in caller order, used exactly as given.
	Output string    // Destination file path; empty writes to Stdout.
	Stdout io.Writer // Writer used when Output is empty; nil defaults to os.Stdout.
}

// Failure records one input that could not be read.
type Failure struct {
	Path string // The input path as supplied.
	Err  error  // Why the input was skipped.
}

// Result reports how many inputs were concatenated and which were skipped.
type Result struct {
	Succeeded int
	Failures  []Failure
}

// Sentinel errors reported by Run.
var (
	// ErrNoInputs is returned when the request names no input files.
	ErrNoInputs = errors.New("at least one input file is required")

	// ErrAllInputsFailed is returned when every supplied input failed to read.
	ErrAllInputsFailed = errors.New("all input files failed to read")

	// ErrNotRegularFile marks inputs that exist but are not regular files.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrNotText marks inputs whose content is not valid UTF-8 text.
	ErrNotText = errors.New("content is not valid UTF-8 text")
)
