package cmd

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/dendrascience/dendra-utils/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ErrInvalidSeedCount is returned for a negative file count or fewer than one line per file.
var ErrInvalidSeedCount = errors.New("count must be >= 0 and lines >= 1")

// ManifestName is the file seed writes its name-to-digest manifest to.
const ManifestName = "manifest.json"

// SeedManifest maps generated file names to their digests.
type SeedManifest struct {
	Algorithm util.Algorithm    `json:"algorithm"`
	Files     map[string]string `json:"files"`
}

// NewSeedCmd creates and returns the seed subcommand for the djutil CLI.
// It generates fixture files and records their digests so hash can be checked against them.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		maxLines   int
		algo       string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate fixture files with a digest manifest",
		Long: `Generate test files for checking hash and chunk behaviour.

Each file is named after a fresh UUID and holds between one and --lines UUID
lines. A manifest.json mapping every file name to its digest is written next
to the files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fileCount < 0 || maxLines < 1 {
				return ErrInvalidSeedCount
			}
			opts, err := hashOptions(cmd, algo, 0)
			if err != nil {
				return err
			}
			return runSeed(cmd, outputPath, fileCount, maxLines, opts, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&maxLines, "lines", "l", 64, "Maximum number of UUID lines per file")
	cmd.Flags().StringVarP(&algo, "algo", "a", string(util.DefaultAlgorithm), "Digest algorithm for the manifest")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(cmd *cobra.Command, outputPath string, fileCount, maxLines int, opts util.HashOptions, verbose bool) error {
	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprintf(out, "Generating %d test files in %s\n", fileCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	manifest := SeedManifest{Algorithm: opts.Algorithm, Files: make(map[string]string, fileCount)}
	for i := range fileCount {
		lineCount, err := rand.Int(rand.Reader, big.NewInt(int64(maxLines)))
		if err != nil {
			return err
		}
		var content strings.Builder
		for range lineCount.Int64() + 1 {
			content.WriteString(uuid.New().String())
			content.WriteByte('\n')
		}

		name := uuid.New().String() + ".txt"
		path := filepath.Join(outputPath, name)
		if err := os.WriteFile(path, []byte(content.String()), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}

		digest, err := util.GetFileHashWithOptions(path, opts)
		if err != nil {
			return err
		}
		manifest.Files[name] = digest

		if verbose && (i+1)%1000 == 0 {
			fmt.Fprintf(out, "Created %d/%d files...\n", i+1, fileCount)
		}
	}

	if err := util.WriteJSONFile(filepath.Join(outputPath, ManifestName), manifest); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if verbose {
		fmt.Fprintf(out, "Successfully created %d files\n", fileCount)
	}
	return nil
}
