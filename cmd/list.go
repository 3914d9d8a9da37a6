package cmd

import (
	"fmt"
	"strings"

	"filecat/pkg/exclude"
	"filecat/pkg/listing"

	"github.com/spf13/cobra"
)

// newListCmd builds the list subcommand, a companion to the root command for
// discovering which files to concatenate. It walks a directory, keeps files
// matching the requested extensions, and prints them space separated so the
// result can be fed straight back into filecat.
func newListCmd(a *app) *cobra.Command {
	var (
		extensions []string
		omit       []string
		root       string
		tree       bool
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List files under a directory filtered by extension",
		Long: `List the files under a directory that match the given extensions, skipping
well-known build, cache, and VCS directories. The output is a single
space-separated line ordered by extension and then by path, ready to pass
back to filecat as arguments. Use --tree for a human-readable layout
instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			matcher := exclude.NewMatcher(a.logger)
			matcher.Add(listing.DefaultExcludes()...)
			matcher.Add(omit...)

			paths, err := listing.Collect(listing.Options{
				Root:       root,
				Extensions: extensions,
				Excludes:   matcher,
			}, a.logger)
			if err != nil {
				return err
			}

			if tree {
				fmt.Fprint(cmd.OutOrStdout(), listing.RenderTree(root, paths))
				return nil
			}
			if len(paths) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(paths, " "))
			}
			return nil
		},
	}

	listCmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, "file extensions to include, e.g. .go,.md")
	listCmd.Flags().StringSliceVarP(&omit, "omit-dirs", "o", nil, "extra name patterns to exclude, on top of the defaults")
	listCmd.Flags().StringVar(&root, "path", ".", "directory to scan")
	listCmd.Flags().BoolVar(&tree, "tree", false, "render the matches as a directory tree")
	_ = listCmd.MarkFlagRequired("extensions")

	return listCmd
}
