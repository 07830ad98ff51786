package util

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ChunkString splits s into pieces of at most maxLen runes.
//
// With an empty sep, s is cut into consecutive slices of maxLen runes, the last one
// holding the remainder. Otherwise s is split on sep and consecutive parts are packed
// greedily, rejoined with sep, into groups no longer than maxLen. A part that is longer
// than maxLen on its own becomes a group by itself and is not subdivided, so joining
// the result with sep always reproduces s.
func ChunkString(s string, maxLen int, sep string) ([]string, error) {
	if maxLen <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidChunkLength, maxLen)
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return []string{s}, nil
	}
	if sep == "" {
		return chunkFixed(s, maxLen), nil
	}
	return chunkBySeparator(s, maxLen, sep), nil
}

func chunkFixed(s string, maxLen int) []string {
	n := utf8.RuneCountInString(s)
	chunks := make([]string, 0, (n+maxLen-1)/maxLen)
	for s != "" {
		end, count := 0, 0
		for end < len(s) && count < maxLen {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}

func chunkBySeparator(s string, maxLen int, sep string) []string {
	sepLen := utf8.RuneCountInString(sep)

	var chunks []string
	var group []string
	groupLen := 0
	for _, part := range strings.Split(s, sep) {
		partLen := utf8.RuneCountInString(part)
		if len(group) > 0 && groupLen+sepLen+partLen > maxLen {
			chunks = append(chunks, strings.Join(group, sep))
			group, groupLen = nil, 0
		}
		if len(group) > 0 {
			groupLen += sepLen
		}
		group = append(group, part)
		groupLen += partLen
	}
	return append(chunks, strings.Join(group, sep))
}
