// Package rows parses files of integer pairs into Rows.
package rows

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// A Row is one parsed input line: a pair of numbers and the distance
// between them.
type Row struct {
	Numbers []int
	// Difference is |Numbers[0] - Numbers[1]| when the Row is created.
	// The column-sort pass overwrites it.
	Difference int
}

// New creates a Row for the pair (a, b).
func New(a, b int) Row {
	return Row{
		Numbers:    []int{a, b},
		Difference: abs(a - b),
	}
}

// Stats records what happened while parsing.
type Stats struct {
	Bytes   int64
	Lines   int
	Rows    int
	Skipped int
}

// ParseLine parses a line holding exactly two whitespace-separated
// integers. It reports false for any other line.
func ParseLine(line string) (Row, bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Row{}, false
	}
	var nums [2]int
	for i, field := range fields {
		n, err := strconv.ParseInt(field, 10, 32)
		if err != nil {
			return Row{}, false
		}
		nums[i] = int(n)
	}
	return New(nums[0], nums[1]), true
}

// ErrInvalidUTF8 is returned when the input is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("input is not valid UTF-8")

// Parse reads r to the end and returns the Rows for its well-formed
// lines, in order. Malformed lines are skipped and counted in the Stats.
func Parse(r io.Reader) ([]Row, Stats, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, Stats{}, err
	}
	return parse(b)
}

// ReadFile reads the named file and parses it. Errors opening or reading
// the file are returned as-is. A file that is not valid UTF-8 gives a
// *fs.PathError wrapping ErrInvalidUTF8.
func ReadFile(name string) ([]Row, Stats, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, Stats{}, err
	}
	rs, stats, err := parse(b)
	if err != nil {
		return nil, stats, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return rs, stats, nil
}

// parse splits b on newlines, dropping a trailing \r from each line.
// A final newline does not start another line.
func parse(b []byte) ([]Row, Stats, error) {
	stats := Stats{Bytes: int64(len(b))}
	if !utf8.Valid(b) {
		return nil, stats, ErrInvalidUTF8
	}
	var rs []Row
	for len(b) > 0 {
		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			line, b = b[:i], b[i+1:]
		} else {
			b = nil
		}
		stats.Lines++
		row, ok := ParseLine(string(bytes.TrimSuffix(line, []byte("\r"))))
		if !ok {
			stats.Skipped++
			continue
		}
		rs = append(rs, row)
	}
	stats.Rows = len(rs)
	return rs, stats, nil
}

// Clone returns a deep copy of rs.
func Clone(rs []Row) []Row {
	if rs == nil {
		return nil
	}
	c := make([]Row, len(rs))
	for i, r := range rs {
		c[i] = Row{
			Numbers:    append([]int(nil), r.Numbers...),
			Difference: r.Difference,
		}
	}
	return c
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
