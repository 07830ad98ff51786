package util

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"log"
	"os"
	"strings"

	"github.com/taigrr/colorhash"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest function supported by the file hasher.
type Algorithm string

const (
	Blake2b Algorithm = "blake2b"
	MD5     Algorithm = "md5"
	SHA3    Algorithm = "sha3"
)

// DefaultAlgorithm is used when HashOptions.Algorithm is empty.
const DefaultAlgorithm = Blake2b

// DefaultChunkSize is the number of bytes read per digest update.
const DefaultChunkSize = 128 * 1024

// ShardBuckets is the number of buckets ShardPathFromDigest distributes digests over.
const ShardBuckets = 1000

// MD5DeprecationWarning is logged whenever an MD5 digest is created.
const MD5DeprecationWarning = "MD5 checksum is deprecated. Consider using 'blake2b' or 'sha3'"

// HashOptions controls how a file or stream is hashed.
// The zero value hashes with BLAKE2b-512 in 128 KiB chunks and logs to log.Default().
type HashOptions struct {
	ChunkSize int
	// Algorithm is matched like ParseAlgorithm, so "MD5" and "md5" are the same.
	Algorithm Algorithm
	// Logger receives non-fatal diagnostics such as the MD5 deprecation warning.
	Logger *log.Logger
}

// ParseAlgorithm converts a user supplied name into an Algorithm.
// Names are matched case-insensitively; an empty name selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(name))); a {
	case "":
		return DefaultAlgorithm, nil
	case Blake2b, MD5, SHA3:
		return a, nil
	default:
		return "", unsupportedAlgorithm(name)
	}
}

func unsupportedAlgorithm(name string) error {
	return fmt.Errorf("%w: %q, consider using %q or %q", ErrUnsupportedAlgorithm, name, Blake2b, SHA3)
}

// SupportedAlgorithms lists every algorithm accepted by ParseAlgorithm.
func SupportedAlgorithms() []Algorithm {
	return []Algorithm{Blake2b, SHA3, MD5}
}

// resolve fills in defaults and validates the options without touching any file.
func (o HashOptions) resolve() (HashOptions, error) {
	algorithm, err := ParseAlgorithm(string(o.Algorithm))
	if err != nil {
		return o, err
	}
	o.Algorithm = algorithm
	switch {
	case o.ChunkSize == 0:
		o.ChunkSize = DefaultChunkSize
	case o.ChunkSize < 0:
		return o, fmt.Errorf("%w: got %d", ErrInvalidChunkSize, o.ChunkSize)
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
	return o, nil
}

// newDigest returns a fresh hash.Hash for a validated algorithm.
func (o HashOptions) newDigest() hash.Hash {
	switch o.Algorithm {
	case MD5:
		// kept for checksums recorded before blake2b became the default
		o.Logger.Printf("Warning: %s", MD5DeprecationWarning)
		return md5.New()
	case SHA3:
		return sha3.New512()
	default:
		h, err := blake2b.New512(nil)
		if err != nil {
			// only reachable with a key longer than 64 bytes
			panic(err)
		}
		return h
	}
}

// GetFileHash hashes a file with the default options and returns the digest as a
// lowercase hex string suitable for use in a filepath.
func GetFileHash(path string) (string, error) {
	return GetFileHashWithOptions(path, HashOptions{})
}

// GetFileHashWithOptions hashes the file at path using the algorithm and chunk size in opts.
// The options are validated before the file is opened, so an unsupported algorithm
// never touches the filesystem. Open and read errors are returned unchanged.
func GetFileHashWithOptions(path string, opts HashOptions) (string, error) {
	opts, err := opts.resolve()
	if err != nil {
		return "", err
	}
	h := opts.newDigest()
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return hashChunks(file, h, opts.ChunkSize)
}

// GetHash calculates the digest of everything read from r.
// It returns the digest as a lowercase hexadecimal string.
func GetHash(r io.Reader, opts HashOptions) (string, error) {
	opts, err := opts.resolve()
	if err != nil {
		return "", err
	}
	return hashChunks(r, opts.newDigest(), opts.ChunkSize)
}

// hashChunks feeds r into h in reads of exactly chunkSize bytes, except for the last.
func hashChunks(r io.Reader, h hash.Hash, chunkSize int) (string, error) {
	buf := make([]byte, chunkSize)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ShardPathFromDigest generates a bucketed identifier from a digest.
// The result is in the format "bucket-digest" (e.g., "742-786a02f7..."), where the
// bucket is derived from a color hash of the digest mod ShardBuckets. Callers use it
// to spread files named by content over a fixed number of directories.
func ShardPathFromDigest(digest string) string {
	bucket := colorhash.HashString(digest) % ShardBuckets
	if bucket < 0 {
		bucket = -bucket
	}
	return fmt.Sprintf("%03d-%s", bucket, digest)
}

// DigestFromShardPath extracts the digest from a path built by ShardPathFromDigest.
func DigestFromShardPath(path string) (string, error) {
	bucket, digest, ok := strings.Cut(path, "-")
	if !ok || bucket == "" || digest == "" {
		return "", fmt.Errorf("invalid shard path %q", path)
	}
	return digest, nil
}
