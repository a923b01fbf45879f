// Package report prints distance summaries.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"

	"github.com/cespare/coldist/distance"
	"github.com/cespare/coldist/rows"
)

// A Reporter writes a titled summary of a set of rows to W.
type Reporter struct {
	W io.Writer

	// ShowRows lists every row before the sum.
	ShowRows bool
	// GroupDigits prints the sum with thousands separators.
	GroupDigits bool
}

// Report writes the title and the sum of the rows' differences.
// Write errors are ignored.
func (r *Reporter) Report(rs []rows.Row, title string) {
	fmt.Fprintf(r.W, "\n%s:\n", title)
	if r.ShowRows {
		for i, row := range rs {
			fmt.Fprintf(r.W, "Row %d: %s = %d\n", i+1, pretty.Sprint(row.Numbers), row.Difference)
		}
	}
	fmt.Fprintf(r.W, "Sum of all differences: %s\n", r.format(distance.Sum(rs)))
}

func (r *Reporter) format(n int) string {
	if r.GroupDigits {
		return humanize.Comma(int64(n))
	}
	return strconv.Itoa(n)
}
