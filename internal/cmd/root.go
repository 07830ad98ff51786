package cmd

import (
	"github.com/dendrascience/dendra-utils/util"
	"github.com/dendrascience/dendra-utils/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the djutil CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	return newRootCmd(util.ExecRunner{})
}

func newRootCmd(runner util.CommandRunner) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "djutil",
		Short: "djutil - small utilities for hashing files, chunking text and merging mappings",
		Long: `djutil bundles a handful of independent utilities used around dendra data tooling.

Use subcommands to perform different operations:
  - hash: Compute content digests of files (blake2b, sha3, md5)
  - revision: Print the git commit hash of HEAD
  - chunk: Split text into bounded-length chunks
  - merge: Deep merge JSON or YAML mapping documents
  - seed: Generate fixture files with a digest manifest
  - verify: Check files against a digest manifest`,
		Version: version.GetFullVersion(),
	}

	groupData := "data"
	groupRepository := "repository"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupData,
		Title: "Data Utilities",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupRepository,
		Title: "Repository Utilities",
	})

	hashCmd := NewHashCmd()
	chunkCmd := NewChunkCmd()
	mergeCmd := NewMergeCmd()
	seedCmd := NewSeedCmd()
	verifyCmd := NewVerifyCmd()
	revisionCmd := NewRevisionCmd(runner)

	hashCmd.GroupID = groupData
	chunkCmd.GroupID = groupData
	mergeCmd.GroupID = groupData
	seedCmd.GroupID = groupData
	verifyCmd.GroupID = groupData
	revisionCmd.GroupID = groupRepository

	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(chunkCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(revisionCmd)

	return rootCmd
}
