package fastq

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode/utf8"
)

// Options controls how a FASTQ file is loaded.
// The zero value decodes qualities and keeps metadata values as strings,
// which is not the default; start from DefaultOptions instead
type Options struct {
	// SkipQuals replaces quality decoding with zero vectors of the sequence length
	SkipQuals bool
	// ConvertInt turns all-digit metadata values into ints
	ConvertInt bool
	// Logf, if set, receives notes about skipped identifier lines and
	// dropped trailing records
	Logf func(format string, args ...any)
}

// DefaultOptions skips quality decoding and converts integer metadata
func DefaultOptions() Options {
	return Options{SkipQuals: true, ConvertInt: true}
}

func (o Options) logf(format string, args ...any) {
	if o.Logf != nil {
		o.Logf(format, args...)
	}
}

// recordState is the slot the next substantive line fills
type recordState int

const (
	awaitingID recordState = iota
	awaitingSeq
	awaitingQual
)

// record holds the slots of the read being assembled
type record struct {
	state    recordState
	id       string
	metadata Metadata
	seq      string
}

func (r *record) reset() { *r = record{} }

// Read loads a whole FASTQ file. Compressed files and "-" for stdin are
// supported through xopen
func Read(path string, opts Options) (*FastQ, error) {
	lines, closer, err := OpenLines(path)
	if err != nil {
		return nil, fmt.Errorf("error opening '%s': %w", path, err)
	}
	defer closer.Close()

	return Assemble(lines, path, opts)
}

// ReadFrom loads FASTQ records from r. path is only used in error messages
func ReadFrom(r io.Reader, path string, opts Options) (*FastQ, error) {
	return Assemble(Lines(r), path, opts)
}

// Assemble runs the record state machine over lines and builds the collection.
//
// Blank lines and lines that are exactly "+" are skipped in every state.
// While waiting for an identifier, lines that do not parse as one are
// discarded; once a record is started every line is taken as its sequence
// and then its quality. A quality vector whose length differs from the
// sequence aborts the whole load. A record still incomplete at the end of
// input is dropped
func Assemble(lines iter.Seq2[string, error], path string, opts Options) (*FastQ, error) {
	f := &FastQ{
		seqs:     make(map[string]string),
		quals:    make(map[string]Quals),
		metadata: make(map[string]Metadata),
	}

	var cur record
	lineNo := 0
	for line, err := range lines {
		if err != nil {
			return nil, fmt.Errorf("error reading '%s': %w", path, err)
		}
		lineNo++

		line = strings.TrimSpace(line)
		if line == "" || line == separator {
			continue
		}

		switch cur.state {
		case awaitingID:
			id, metadata, err := ParseIDLine(line, opts.ConvertInt, lineNo, path)
			if err != nil {
				if !errors.Is(err, ErrMalformedIdentifier) {
					return nil, err
				}
				opts.logf("skipping line: %v", err)
				continue
			}
			cur.id, cur.metadata = id, metadata
			cur.state = awaitingSeq

		case awaitingSeq:
			cur.seq = Normalize(line)
			cur.state = awaitingQual

		case awaitingQual:
			seqLen := utf8.RuneCountInString(cur.seq)
			var quals Quals
			if opts.SkipQuals {
				quals = ZeroQuals(seqLen)
			} else {
				quals = DecodeQuals(line)
			}
			if len(quals) != seqLen {
				return nil, &LengthMismatchError{
					Path:    path,
					Line:    lineNo,
					ID:      cur.id,
					SeqLen:  seqLen,
					QualLen: len(quals),
				}
			}
			f.add(cur.id, cur.seq, quals, cur.metadata)
			cur.reset()

		default:
			return nil, fmt.Errorf("%w in '%s' (line %d)", ErrUnexpectedLine, path, lineNo)
		}
	}

	if cur.state != awaitingID {
		opts.logf("dropping incomplete record '%s' at end of '%s'", cur.id, path)
	}
	return f, nil
}

// add commits one record to all three maps. A repeated identifier
// overwrites the earlier record but keeps its position
func (f *FastQ) add(id, seq string, quals Quals, metadata Metadata) {
	if _, seen := f.seqs[id]; !seen {
		f.ids = append(f.ids, id)
	}
	f.seqs[id] = seq
	f.quals[id] = quals
	f.metadata[id] = metadata
}
