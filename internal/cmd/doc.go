// Package cmd provides the command-line interface implementation for djutil.
//
// It uses the Cobra library for command structure; main hands the root command to
// Fang for styling and error rendering.
//
// Commands:
//   - hash: file digests over blake2b, sha3 or md5
//   - revision: git commit hash of HEAD
//   - chunk: bounded-length text chunks
//   - merge: deep merge of JSON and YAML mappings
//   - seed: fixture files plus a digest manifest
//   - verify: re-hash files listed in a seed manifest
//
// Each command lives in its own file with a constructor returning a *cobra.Command.
// The commands are thin wrappers over the util package.
package cmd
