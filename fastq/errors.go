package fastq

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedIdentifier is reported for an identifier line without the leading '@'
	ErrMalformedIdentifier = errors.New("malformed FASTQ identifier")

	// ErrLengthMismatch is reported when a quality line does not cover the sequence
	ErrLengthMismatch = errors.New("malformed FASTQ file, read and quality lengths don't match")

	// ErrUnexpectedLine is reported when a line arrives in a state that cannot take it
	ErrUnexpectedLine = errors.New("malformed FASTQ: unexpected line")
)

// IdentifierError describes an identifier line that could not be parsed
type IdentifierError struct {
	Line int
	Path string
	Text string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("%v on line %d of '%s': '%s'", ErrMalformedIdentifier, e.Line, e.Path, e.Text)
}

func (e *IdentifierError) Unwrap() error { return ErrMalformedIdentifier }

// LengthMismatchError carries the record that failed the length check
type LengthMismatchError struct {
	Path    string
	Line    int
	ID      string
	SeqLen  int
	QualLen int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%v: read '%s' on line %d of '%s' has %d bases and %d quality scores",
		ErrLengthMismatch, e.ID, e.Line, e.Path, e.SeqLen, e.QualLen)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
