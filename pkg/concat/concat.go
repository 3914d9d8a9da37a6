// Package concat joins text files into a single output stream. Each readable
// input contributes one delimiter block:
//
//	\n\n=== START: <path> ===\n\n<content>\n\n=== END: <path> ===\n\n
//
// Blocks appear in the order the inputs were supplied, paths are echoed
// exactly as given, and content bytes are never altered. Inputs that cannot
// be read are skipped with a warning so one bad path does not abort the run.
package concat

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

// Run concatenates the request's inputs, in order, into the output target.
//
// Every input is attempted exactly once. Inputs that fail to read are
// recorded in the Result and the run continues with the rest; errors on the
// output target are fatal. Run returns ErrNoInputs for an empty request and
// ErrAllInputsFailed when not a single input could be read.
func Run(req Request, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var res Result
	if len(req.Inputs) == 0 {
		return res, ErrNoInputs
	}

	// The destination is resolved once, before any input is read, so a bad
	// output path fails fast and an existing file is truncated up front.
	out, closeOutput, err := openOutput(req)
	if err != nil {
		logger.Error("Failed to open output target",
			zap.String("output", req.Output),
			zap.Error(err))
		return res, err
	}

	writer := bufio.NewWriter(out)
	for _, path := range req.Inputs {
		content, readErr := readInput(path, logger)
		if readErr != nil {
			logger.Warn("Skipping unreadable input",
				zap.String("path", path),
				zap.Error(readErr))
			res.Failures = append(res.Failures, Failure{Path: path, Err: readErr})
			continue
		}

		if writeErr := writeBlock(writer, path, content); writeErr != nil {
			logger.Error("Failed to write combined output",
				zap.String("path", path),
				zap.Error(writeErr))
			_ = closeOutput()
			return res, fmt.Errorf("write combined output: %w", writeErr)
		}
		res.Succeeded++
		logger.Debug("Concatenated input",
			zap.String("path", path),
			zap.Int("sizeBytes", len(content)))
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush combined output",
			zap.String("output", req.Output),
			zap.Error(err))
		_ = closeOutput()
		return res, fmt.Errorf("flush combined output: %w", err)
	}
	if err := closeOutput(); err != nil {
		logger.Error("Failed to close output file",
			zap.String("output", req.Output),
			zap.Error(err))
		return res, fmt.Errorf("close output file: %w", err)
	}

	if res.Succeeded == 0 {
		return res, ErrAllInputsFailed
	}

	logger.Info("Successfully concatenated files",
		zap.Int("totalFiles", res.Succeeded),
		zap.Int("failedFiles", len(res.Failures)))
	return res, nil
}

// openOutput resolves the run's destination: the named file (created or
// truncated) when Output is set, otherwise the request's Stdout writer. The
// returned close function is a no-op for non-file destinations.
func openOutput(req Request) (io.Writer, func() error, error) {
	if req.Output != "" {
		outFile, err := os.Create(req.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("create output file %s: %w", req.Output, err)
		}
		return outFile, outFile.Close, nil
	}
	if req.Stdout != nil {
		return req.Stdout, func() error { return nil }, nil
	}
	return os.Stdout, func() error { return nil }, nil
}
