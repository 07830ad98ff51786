package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dendrascience/dendra-utils/util"
	"github.com/spf13/cobra"
)

// ErrVerificationFailed is returned when any file does not match its manifest digest.
var ErrVerificationFailed = errors.New("verification failed")

// ErrInvalidManifest is returned for a manifest that is empty or lists no files.
var ErrInvalidManifest = errors.New("invalid manifest")

// NewVerifyCmd creates and returns the verify subcommand for the djutil CLI.
// It checks files against a digest manifest written by seed.
func NewVerifyCmd() *cobra.Command {
	var (
		manifestPath string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify files against a digest manifest",
		Long: `Verify that every file listed in a manifest still has the recorded digest.

The manifest is the manifest.json written by seed; file names are resolved
relative to the manifest's directory. Missing files and digest mismatches are
reported, and the command fails if there are any.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, manifestPath, verbose)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "Path to manifest.json (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("manifest")

	return cmd
}

func runVerify(cmd *cobra.Command, manifestPath string, verbose bool) error {
	manifest, err := readManifest(manifestPath)
	if err != nil {
		return err
	}
	opts, err := hashOptions(cmd, string(manifest.Algorithm), 0)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(manifest.Files))
	for name := range manifest.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	dir := filepath.Dir(manifestPath)
	var problems []string
	for _, name := range names {
		got, err := util.GetFileHashWithOptions(filepath.Join(dir, name), opts)
		switch {
		case err != nil:
			problems = append(problems, fmt.Sprintf("%s: %v", name, err))
		case got != manifest.Files[name]:
			problems = append(problems, fmt.Sprintf("%s: digest mismatch", name))
		case verbose:
			fmt.Fprintf(out, "%s: OK\n", name)
		}
	}

	fmt.Fprintf(out, "Files checked: %d\n", len(names))
	if len(problems) == 0 {
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(out, "  - %s\n", p)
	}
	return fmt.Errorf("%w: %d of %d files", ErrVerificationFailed, len(problems), len(names))
}

func readManifest(path string) (SeedManifest, error) {
	var manifest SeedManifest
	f, err := os.Open(path)
	if err != nil {
		return manifest, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&manifest); err != nil {
		return manifest, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidManifest, path, err)
	}
	if manifest.Files == nil {
		return manifest, fmt.Errorf("%w: %s has no files", ErrInvalidManifest, path)
	}
	return manifest, nil
}
