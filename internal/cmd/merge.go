package cmd

import (
	"fmt"

	"github.com/dendrascience/dendra-utils/util"
	"github.com/spf13/cobra"
)

// NewMergeCmd creates and returns the merge subcommand for the djutil CLI.
func NewMergeCmd() *cobra.Command {
	var (
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "merge BASE [OVERRIDE...]",
		Short: "Deep merge JSON or YAML mapping documents",
		Long: `Merge override documents into a base document, left to right.

Nested mappings are merged key by key; any other value in a later document
replaces the earlier one. Documents may be JSON (.json) or YAML (.yaml, .yml)
and can be mixed. The result is written in --format, which defaults to the
extension of --output, or of BASE when printing to standard output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(cmd, args, format, outputPath)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json or yaml")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to this file instead of stdout")

	return cmd
}

func runMerge(cmd *cobra.Command, paths []string, format, outputPath string) error {
	outFormat, err := resolveMergeFormat(format, outputPath, paths[0])
	if err != nil {
		return err
	}

	base, err := util.ReadMappingFile(paths[0])
	if err != nil {
		return err
	}
	overrides := make([]map[string]any, 0, len(paths)-1)
	for _, path := range paths[1:] {
		m, err := util.ReadMappingFile(path)
		if err != nil {
			return err
		}
		overrides = append(overrides, m)
	}

	merged := util.MergeMappings(base, overrides...)
	if outputPath == "" {
		return util.EncodeMapping(cmd.OutOrStdout(), merged, outFormat)
	}
	if err := util.WriteMappingFile(outputPath, merged, outFormat); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return nil
}

func resolveMergeFormat(format, outputPath, basePath string) (util.Format, error) {
	switch {
	case format != "":
		return util.ParseFormat(format)
	case outputPath != "":
		return util.FormatFromPath(outputPath)
	default:
		return util.FormatFromPath(basePath)
	}
}
