package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dendrascience/dendra-utils/util"
	"github.com/spf13/cobra"
)

// NewChunkCmd creates and returns the chunk subcommand for the djutil CLI.
func NewChunkCmd() *cobra.Command {
	var (
		maxLen int
		sep    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "chunk [TEXT]",
		Short: "Split text into bounded-length chunks",
		Long: `Split text into chunks of at most --max characters.

TEXT is read from standard input when omitted; one trailing newline is dropped.
Without --sep the text is cut at fixed widths. With --sep the text is split on
the separator and the parts are packed greedily, so a chunk only exceeds --max
when a single part is longer than --max on its own.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) > 0 {
				text = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
				text = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
			}
			return runChunk(cmd.OutOrStdout(), text, maxLen, sep, asJSON)
		},
	}

	cmd.Flags().IntVarP(&maxLen, "max", "m", 0, "Maximum chunk length in characters (required)")
	cmd.Flags().StringVarP(&sep, "sep", "s", "", "Separator to align chunk boundaries on")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the chunks as a JSON array")

	cmd.MarkFlagRequired("max")

	return cmd
}

func runChunk(w io.Writer, text string, maxLen int, sep string, asJSON bool) error {
	chunks, err := util.ChunkString(text, maxLen, sep)
	if err != nil {
		return err
	}
	if asJSON {
		return json.NewEncoder(w).Encode(chunks)
	}
	for _, c := range chunks {
		fmt.Fprintln(w, c)
	}
	return nil
}
