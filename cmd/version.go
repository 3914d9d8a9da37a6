// File: cmd/version.go
package cmd

import (
	"fmt"

	"filecat/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd builds the version subcommand. It prints the full build
// information by default; the --short flag reduces it to the bare version
// number for scripting.
func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of filecat",
		Long:  `Display the current version information of the filecat CLI tool.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")

	return versionCmd
}
