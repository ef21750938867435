package domain

import (
	"fmt"
	"hash/fnv"
	"strings"
	"time"
)

// GenerateProductCode derives a human-traceable code from a product name:
// a 7-hex fingerprint of the name, the generation time in unix millis, and
// the longest strictly-increasing character run(s) of the lowered name with
// their bounding indices. The code is not guaranteed unique; the store's
// unique index on productCode is the actual enforcement.
func GenerateProductCode(name string, now time.Time) string {
	runs, start, end := longestIncreasingRuns(strings.ToLower(name))
	return fmt.Sprintf("%s%d-%d%s%d", fingerprint(name), now.UnixMilli(), start, runs, end)
}

// fingerprint hashes the original (non-lowered) name with FNV-1a and keeps
// the first 7 hex characters. Collisions are acceptable for a display code.
func fingerprint(name string) string {
	h := fnv.New32a()
	h.Write([]byte(name))
	return fmt.Sprintf("%08x", h.Sum32())[:7]
}

// longestIncreasingRuns scans for the longest run of strictly increasing
// characters. Ties are concatenated in order of appearance; the reported
// indices are the start of the first tying run and the end of the last.
func longestIncreasingRuns(s string) (string, int, int) {
	if s == "" {
		return "", 0, 0
	}

	chars := []rune(s)

	type run struct{ start, end int }
	var runs []run
	best := 1

	start := 0
	for i := 1; i <= len(chars); i++ {
		if i == len(chars) || chars[i] <= chars[i-1] {
			length := i - start
			if length > best {
				best = length
				runs = runs[:0]
			}
			if length == best {
				runs = append(runs, run{start: start, end: i - 1})
			}
			start = i
		}
	}

	var sb strings.Builder
	for _, r := range runs {
		sb.WriteString(string(chars[r.start : r.end+1]))
	}

	return sb.String(), runs[0].start, runs[len(runs)-1].end
}
