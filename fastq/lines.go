package fastq

import (
	"bufio"
	"bytes"
	"io"
	"iter"

	"github.com/shenwei356/xopen"
)

// Longest line accepted by Lines
const maxLineSize = 1 << 30

// scanLines is a bufio.SplitFunc that ends lines at "\n", "\r\n" or a lone "\r"
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// '\r': need the next byte to tell "\r\n" from a lone "\r"
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Lines yields the lines of r without their line terminators. "\n", "\r\n"
// and a lone "\r" all end a line, and a last line without a terminator is
// yielded as well. Iteration stops after the first read error, which is
// yielded with an empty line
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		scanner.Split(scanLines)
		for scanner.Scan() {
			if !yield(scanner.Text(), nil) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield("", err)
		}
	}
}

// OpenLines opens path with xopen, so gzip/xz/zstd/bzip2 input and "-" for
// stdin work transparently. The caller must close the returned closer
func OpenLines(path string) (iter.Seq2[string, error], io.Closer, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return nil, nil, err
	}
	return Lines(fh.Reader), fh, nil
}
