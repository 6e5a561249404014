package fastq

import (
	"strings"

	"github.com/shenwei356/bio/seq"
)

// Normalize uppercases a raw sequence line. Input that is not a valid
// (redundant) DNA sequence after uppercasing is returned unchanged
func Normalize(raw string) string {
	upper := strings.ToUpper(raw)
	if err := seq.DNAredundant.IsValid([]byte(upper)); err != nil {
		return raw
	}
	return upper
}
