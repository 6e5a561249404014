package fastq

import (
	"errors"
	"reflect"
	"testing"
	"unicode/utf8"
)

func TestParseIDLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		convertInt bool
		wantID     string
		wantMeta   Metadata
		wantErr    bool
	}{
		{
			name:       "Identifier with mixed metadata",
			line:       "@read1 len=10 tag=ab flag==",
			convertInt: true,
			wantID:     "read1",
			wantMeta:   Metadata{"len": 10, "tag": "ab"},
		},
		{
			name:       "Integer conversion disabled",
			line:       "@read1 len=10 tag=ab",
			convertInt: false,
			wantID:     "read1",
			wantMeta:   Metadata{"len": "10", "tag": "ab"},
		},
		{
			name:       "No metadata",
			line:       "@SRR001666.1",
			convertInt: true,
			wantID:     "SRR001666.1",
			wantMeta:   Metadata{},
		},
		{
			name:       "Tokens without equals sign are ignored",
			line:       "@r1 071112_SLXA-EAS1_s_7:5:1:817:345 length=36",
			convertInt: true,
			wantID:     "r1",
			wantMeta:   Metadata{"length": 36},
		},
		{
			name:       "Last duplicate key wins",
			line:       "@r1 x=1 x=2",
			convertInt: true,
			wantID:     "r1",
			wantMeta:   Metadata{"x": 2},
		},
		{
			name:       "Signed and empty values stay strings",
			line:       "@r1 a=-5 b= c=1.5",
			convertInt: true,
			wantID:     "r1",
			wantMeta:   Metadata{"a": "-5", "b": "", "c": "1.5"},
		},
		{
			name:       "Tabs separate tokens",
			line:       "@r1\tsize=3",
			convertInt: true,
			wantID:     "r1",
			wantMeta:   Metadata{"size": 3},
		},
		{
			name:       "Bare marker gives empty identifier",
			line:       "@",
			convertInt: true,
			wantID:     "",
			wantMeta:   Metadata{},
		},
		{
			name:    "Missing marker",
			line:    "read1 len=10",
			wantErr: true,
		},
		{
			name:    "FASTA marker",
			line:    ">read1",
			wantErr: true,
		},
		{
			name:    "Empty line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, md, err := ParseIDLine(tt.line, tt.convertInt, 7, "reads.fq")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIDLine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if id != tt.wantID {
				t.Errorf("ParseIDLine() id = %q, want %q", id, tt.wantID)
			}
			if !reflect.DeepEqual(md, tt.wantMeta) {
				t.Errorf("ParseIDLine() metadata = %v, want %v", md, tt.wantMeta)
			}
		})
	}
}

func TestParseIDLineError(t *testing.T) {
	_, _, err := ParseIDLine("read1 len=10", true, 12, "reads.fq")
	if !errors.Is(err, ErrMalformedIdentifier) {
		t.Fatalf("error = %v, want ErrMalformedIdentifier", err)
	}

	var idErr *IdentifierError
	if !errors.As(err, &idErr) {
		t.Fatalf("error type = %T, want *IdentifierError", err)
	}
	want := IdentifierError{Line: 12, Path: "reads.fq", Text: "read1 len=10"}
	if *idErr != want {
		t.Errorf("IdentifierError = %+v, want %+v", *idErr, want)
	}

	wantMsg := "malformed FASTQ identifier on line 12 of 'reads.fq': 'read1 len=10'"
	if err.Error() != wantMsg {
		t.Errorf("Error() = %q, want %q", err.Error(), wantMsg)
	}
}

func TestDecodeQuals(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Quals
	}{
		{"Phred 0", "!!!!", Quals{0, 0, 0, 0}},
		{"Phred 40", "IIII", Quals{40, 40, 40, 40}},
		{"Mixed", "!+5?I", Quals{0, 10, 20, 30, 40}},
		{"Below offset", " ", Quals{-1}},
		{"Above usual range", "~", Quals{93}},
		{"Non-ASCII character", "IIé", Quals{40, 40, 200}},
		{"Empty", "", Quals{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeQuals(tt.line)
			if n := utf8.RuneCountInString(tt.line); len(got) != n {
				t.Fatalf("DecodeQuals() length = %d, want %d", len(got), n)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeQuals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"ACGT", "ACGT"},
		{"acgtn", "ACGTN"},
		{"ryKM", "RYKM"},
		{"AC GT", "AC GT"},
		{"@r2", "@r2"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := Normalize(tt.raw); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
