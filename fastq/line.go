// Package fastq loads FASTQ files into an in-memory collection keyed by read identifier.
package fastq

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	PHRED_OFFSET = 33

	idMarker  = '@'
	separator = "+"
)

// Quals is a decoded quality vector, one score per base
type Quals []int

// Metadata holds the key=value annotations of an identifier line.
// Values are either int (all-digit values, when integer conversion is on) or string
type Metadata map[string]any

// ParseIDLine splits an identifier line into the read identifier and its metadata.
//
// The first whitespace-separated token must start with '@', which is stripped
// to obtain the identifier. Every following token with exactly one '=' becomes
// a metadata entry; tokens with no '=' or several are ignored. A later
// duplicate key overwrites an earlier one
//
// Parameters:
//   - line: trimmed identifier line
//   - convertInt: convert all-digit values to int
//   - lineNo, path: used only in the returned *IdentifierError
//
// Example:
//
//	ParseIDLine("@read1 len=10 tag=ab flag==", true, 1, "x.fq")
//	// "read1", Metadata{"len": 10, "tag": "ab"}
func ParseIDLine(line string, convertInt bool, lineNo int, path string) (string, Metadata, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 || parts[0][0] != idMarker {
		return "", nil, &IdentifierError{Line: lineNo, Path: path, Text: line}
	}
	id := parts[0][1:]

	metadata := make(Metadata)
	for _, part := range parts[1:] {
		if strings.Count(part, "=") != 1 {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		metadata[k] = metadataValue(v, convertInt)
	}
	return id, metadata, nil
}

func metadataValue(v string, convertInt bool) any {
	if !convertInt || !isDigits(v) {
		return v
	}
	// Values too large for int stay strings
	n, err := strconv.Atoi(v)
	if err != nil {
		return v
	}
	return n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DecodeQuals converts a Phred+33 quality line into scores, one per character.
// No range check is done: characters below '!' give negative scores and
// non-ASCII characters give scores above the usual range
func DecodeQuals(line string) Quals {
	quals := make(Quals, 0, utf8.RuneCountInString(line))
	for _, c := range line {
		quals = append(quals, int(c)-PHRED_OFFSET)
	}
	return quals
}

// ZeroQuals returns a quality vector of n zeros
func ZeroQuals(n int) Quals {
	return make(Quals, n)
}
