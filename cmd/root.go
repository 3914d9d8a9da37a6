// File: cmd/root.go
package cmd

import (
	"fmt"

	"filecat/pkg/concat"
	"filecat/pkg/logging"
	"filecat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "filecat"

// app carries state shared across the command tree. The logger starts as
// whatever main constructed and is swapped for a debug logger when the
// --verbose flag is set.
type app struct {
	logger *zap.Logger
}

// NewRootCmd builds the filecat command tree around the given logger.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &app{logger: logger}

	var (
		output  string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "filecat [file ...]",
		Short: "Concatenate text files into a single delimited stream",
		Long: `filecat joins one or more text files into a single output stream. Each
file's content is wrapped in START and END delimiter lines naming the file,
so a reader of the combined stream can tell where each source begins and
ends. This is handy for bundling many small files into one document, for
example as review or model context.

Inputs that cannot be read are skipped with a warning and the remaining
files are still combined. The stream goes to stdout unless --output names
a destination file.`,
		Args:    cobra.MinimumNArgs(1),
		Version: version.Get().Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				debugLogger, err := logging.Setup(true, appName, version.Get().Version)
				if err != nil {
					return fmt.Errorf("setup verbose logging: %w", err)
				}
				a.logger = debugLogger
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Past argument validation, errors are runtime failures rather
			// than usage mistakes.
			cmd.SilenceUsage = true

			_, err := concat.Run(concat.Request{
				Inputs: args,
				Output: output,
				Stdout: cmd.OutOrStdout(),
			}, a.logger)
			return err
		},
	}

	rootCmd.Flags().StringVarP(&output, "output", "o", "", "write the combined stream to this file instead of stdout")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newListCmd(a))

	return rootCmd
}

// Execute runs the filecat CLI against os.Args.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}
