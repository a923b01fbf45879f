// Package distance computes distance metrics over parsed rows.
package distance

import (
	"slices"

	"github.com/cespare/coldist/rows"
)

// Sum adds up the Difference of every row.
func Sum(rs []rows.Row) int {
	var sum int
	for _, r := range rs {
		sum += r.Difference
	}
	return sum
}

// Naive returns the sum of the per-row differences computed when the rows
// were parsed.
func Naive(rs []rows.Row) int {
	return Sum(rs)
}

// Transpose returns one slice per column of rs. The number of columns is
// taken from the first row. Values past that count are ignored, and a row
// shorter than the first contributes nothing to the columns it lacks.
func Transpose(rs []rows.Row) [][]int {
	if len(rs) == 0 {
		return nil
	}
	cols := make([][]int, len(rs[0].Numbers))
	for i := range cols {
		cols[i] = make([]int, 0, len(rs))
	}
	for _, r := range rs {
		for i, n := range r.Numbers {
			if i >= len(cols) {
				break
			}
			cols[i] = append(cols[i], n)
		}
	}
	return cols
}

// ColumnDiffs computes a difference for each sorted column but the last.
// Column i is paired with column i+1 by taking the element i places from
// the end of column i and the element i places from the start of column
// i+1.
func ColumnDiffs(cols [][]int) []int {
	if len(cols) < 2 {
		return nil
	}
	diffs := make([]int, len(cols)-1)
	for i := range diffs {
		col, next := cols[i], cols[i+1]
		if i >= len(col) || i >= len(next) {
			continue
		}
		diffs[i] = abs(col[len(col)-1-i] - next[i])
	}
	return diffs
}

// ColumnSort sorts each column of rs independently and sets the
// Difference of every row to the sum of the resulting column differences.
// The row Numbers are left in place.
func ColumnSort(rs []rows.Row) {
	cols := Transpose(rs)
	for _, col := range cols {
		slices.Sort(col)
	}
	var total int
	for _, d := range ColumnDiffs(cols) {
		total += d
	}
	for i := range rs {
		rs[i].Difference = total
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
