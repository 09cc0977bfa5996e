package xvg

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
)

// FromSeq creates a table from any finite sequence of XVG lines. Lines may
// carry their trailing newline; it is trimmed before classification.
func FromSeq(lines iter.Seq[string]) (*Table, error) {
	t := NewTable()
	if err := t.Parse(lines); err != nil {
		return nil, err
	}

	return t, nil
}

// FromLines creates a table from a slice of XVG lines.
func FromLines(lines []string) (*Table, error) {
	return FromSeq(slices.Values(lines))
}

// FromReader creates a table from an XVG stream, reading it line by line.
func FromReader(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	t := NewTable()
	err := t.Parse(func(yield func(string) bool) {
		for sc.Scan() {
			if !yield(sc.Text()) {
				return
			}
		}
	})
	if err != nil {
		return nil, err
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read xvg input: %w", err)
	}

	return t, nil
}

// FromFile creates a table from the XVG file at path. The file is closed
// before returning, whether or not parsing succeeded.
func FromFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return FromReader(f)
}
