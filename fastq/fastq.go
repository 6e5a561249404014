package fastq

import "unicode/utf8"

// FastQ is an immutable collection of reads keyed by identifier.
// The sequence, quality and metadata maps always hold the same identifiers,
// and every quality vector has the length of its sequence
type FastQ struct {
	ids      []string // order of first appearance in the file
	seqs     map[string]string
	quals    map[string]Quals
	metadata map[string]Metadata
}

// Qualities returns the quality vectors in file order
func (f *FastQ) Qualities() []Quals {
	out := make([]Quals, len(f.ids))
	for i, id := range f.ids {
		out[i] = append(Quals(nil), f.quals[id]...)
	}
	return out
}

// Sequences returns the normalized sequences in file order
func (f *FastQ) Sequences() []string {
	out := make([]string, len(f.ids))
	for i, id := range f.ids {
		out[i] = f.seqs[id]
	}
	return out
}

// Keys returns the read identifiers in file order
func (f *FastQ) Keys() []string {
	return append([]string(nil), f.ids...)
}

// KeySet returns the read identifiers as a set
func (f *FastQ) KeySet() map[string]struct{} {
	set := make(map[string]struct{}, len(f.ids))
	for _, id := range f.ids {
		set[id] = struct{}{}
	}
	return set
}

// NumLines returns the number of reads
func (f *FastQ) NumLines() int {
	return len(f.seqs)
}

// NumBases returns the total sequence length (in characters) over all reads
func (f *FastQ) NumBases() int {
	total := 0
	for _, s := range f.seqs {
		total += utf8.RuneCountInString(s)
	}
	return total
}

// Sequence returns the normalized sequence of a read
func (f *FastQ) Sequence(id string) (string, bool) {
	s, ok := f.seqs[id]
	return s, ok
}

// Quality returns a copy of the quality vector of a read
func (f *FastQ) Quality(id string) (Quals, bool) {
	q, ok := f.quals[id]
	if !ok {
		return nil, false
	}
	return append(Quals(nil), q...), true
}

// Metadata returns a copy of the annotations parsed from the read's identifier line
func (f *FastQ) Metadata(id string) (Metadata, bool) {
	md, ok := f.metadata[id]
	if !ok {
		return nil, false
	}
	out := make(Metadata, len(md))
	for k, v := range md {
		out[k] = v
	}
	return out, true
}
