// Package util provides the standalone utilities behind the djutil command.
//
// Every function in this package is independent of the others. None of them keep
// state between calls, and aside from file and process I/O they are pure.
//
// Key Components:
//
// File Hashing:
//   - GetFileHash and GetFileHashWithOptions stream a file through BLAKE2b-512 (default),
//     SHA3-512 or MD5 in fixed-size chunks (DefaultChunkSize = 128 KiB)
//   - MD5 is accepted for older stored checksums and logs a deprecation warning
//   - ShardPathFromDigest spreads digests over 1000 buckets for on-disk layouts
//
// Revision Lookup:
//   - RevisionReader asks git for the commit hash of HEAD through a CommandRunner,
//     so tests can substitute a fake for the real git binary
//   - Failures of the external tool surface as *ExecError with exit code and stderr
//
// String Chunking:
//   - ChunkString splits text into pieces no longer than a maximum rune count,
//     either at fixed widths or by greedily packing separator-delimited parts
//
// Mapping Merge:
//   - MergeMappings overlays override mappings onto a base, recursing into nested
//     mappings and never mutating its inputs
//   - ReadMappingFile and WriteMappingFile move mappings to and from JSON and YAML files
package util
