// Package main provides the djutil command-line interface.
//
// djutil exposes the util package from the shell:
//   - hash: Compute file digests (blake2b by default, sha3, deprecated md5)
//   - revision: Print the git commit hash of HEAD
//   - chunk: Split text into bounded-length chunks
//   - merge: Deep merge JSON and YAML mapping documents
//   - seed: Generate fixture files with a digest manifest
package main
