package cmd

import (
	"fmt"

	"github.com/dendrascience/dendra-utils/util"
	"github.com/spf13/cobra"
)

// NewRevisionCmd creates and returns the revision subcommand for the djutil CLI.
// runner executes git; tests pass a fake.
func NewRevisionCmd(runner util.CommandRunner) *cobra.Command {
	var (
		dir   string
		short bool
	)

	cmd := &cobra.Command{
		Use:   "revision",
		Short: "Print the git commit hash of HEAD",
		Long: `Print the commit hash of HEAD by running "git rev-parse HEAD".

git must be on the search path and the directory must be inside a repository.
When git fails its exit code and error output are reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := util.RevisionReader{Runner: runner, Dir: dir, Short: short}
			rev, err := reader.Read(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rev)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Repository directory (defaults to the working directory)")
	cmd.Flags().BoolVar(&short, "short", false, "Print the abbreviated commit hash")

	return cmd
}
