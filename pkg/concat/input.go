package concat

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// readInput loads one input file, enforcing that it is a regular file whose
// content is text. The path is used exactly as supplied, with no
// normalization and no resolution against a base directory.
func readInput(path string, logger *zap.Logger) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	logger.Debug("Reading input file",
		zap.String("path", path),
		zap.Int64("sizeBytes", info.Size()))

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isTextData(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotText)
	}
	return content, nil
}
