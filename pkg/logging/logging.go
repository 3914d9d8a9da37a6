// Package logging builds the zap loggers used across filecat.
package logging

import (
	"go.uber.org/zap"
)

// Setup constructs the application logger. The production config (JSON on
// stderr) is the default; verbose switches to the development config for
// human-readable debug output. Standard output is never used for logs: it
// carries the concatenated result.
func Setup(verbose bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
