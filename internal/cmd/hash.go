package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/dendrascience/dendra-utils/util"
	"github.com/spf13/cobra"
)

// NewHashCmd creates and returns the hash subcommand for the djutil CLI.
// It prints one "<digest>  <path>" line per file, like the sha*sum tools.
func NewHashCmd() *cobra.Command {
	var (
		algo      string
		chunkSize int
		shard     bool
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "hash FILE...",
		Short: "Compute content digests of files",
		Long: `Compute the content digest of one or more files.

Files are streamed through the selected digest in fixed-size chunks, so the
chunk size only affects memory use, never the result. blake2b (BLAKE2b-512) is
the default; sha3 selects SHA3-512. md5 is still accepted for comparing against
old stored checksums but prints a deprecation warning.

With --recursive, directory arguments are walked and every regular file in
them is hashed in lexical order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := hashOptions(cmd, algo, chunkSize)
			if err != nil {
				return err
			}
			paths := args
			if recursive {
				if paths, err = expandPaths(args); err != nil {
					return err
				}
			}
			return runHash(cmd, paths, opts, shard)
		},
	}

	cmd.Flags().StringVarP(&algo, "algo", "a", string(util.DefaultAlgorithm), "Digest algorithm: blake2b, sha3 or md5 (deprecated)")
	cmd.Flags().IntVarP(&chunkSize, "chunk-size", "c", util.DefaultChunkSize, "Bytes read per digest update")
	cmd.Flags().BoolVar(&shard, "shard", false, "Print the bucketed shard path instead of the bare digest")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Hash every file below directory arguments")

	return cmd
}

// hashOptions parses algo and logs the md5 deprecation warning once for the whole
// command; the per-file hashing gets a quiet logger.
func hashOptions(cmd *cobra.Command, algo string, chunkSize int) (util.HashOptions, error) {
	algorithm, err := util.ParseAlgorithm(algo)
	if err != nil {
		return util.HashOptions{}, err
	}
	if algorithm == util.MD5 {
		log.New(cmd.ErrOrStderr(), "", log.LstdFlags).Printf("Warning: %s", util.MD5DeprecationWarning)
	}
	return util.HashOptions{
		Algorithm: algorithm,
		ChunkSize: chunkSize,
		Logger:    log.New(io.Discard, "", 0),
	}, nil
}

func runHash(cmd *cobra.Command, paths []string, opts util.HashOptions, shard bool) error {
	for _, path := range paths {
		digest, err := util.GetFileHashWithOptions(path, opts)
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", path, err)
		}
		if shard {
			digest = util.ShardPathFromDigest(digest)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", digest, path)
	}
	return nil
}

// expandPaths replaces directories in paths with the regular files below them.
func expandPaths(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}
