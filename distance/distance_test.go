package distance

import (
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/cespare/coldist/rows"
)

func example() []rows.Row {
	return []rows.Row{rows.New(3, 4), rows.New(9, 3), rows.New(2, 5)}
}

func TestNaive(t *testing.T) {
	for _, tt := range []struct {
		rs   []rows.Row
		want int
	}{
		{nil, 0},
		{[]rows.Row{rows.New(5, 5)}, 0},
		{[]rows.Row{rows.New(-3, 4)}, 7},
		{example(), 10},
	} {
		if got := Naive(tt.rs); got != tt.want {
			t.Errorf("Naive(%v): got %d; want %d", tt.rs, got, tt.want)
		}
	}
}

func TestTranspose(t *testing.T) {
	got := Transpose(example())
	want := [][]int{{3, 9, 2}, {4, 3, 5}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Transpose:\n%s", strings.Join(diff, "\n"))
	}
	if got := Transpose(nil); got != nil {
		t.Errorf("Transpose(nil): got %v; want nil", got)
	}
}

func TestColumnDiffs(t *testing.T) {
	for _, tt := range []struct {
		cols [][]int
		want []int
	}{
		{nil, nil},
		{[][]int{{1, 2, 3}}, nil},
		{[][]int{{2, 3, 9}, {3, 4, 5}}, []int{6}},
		{[][]int{{1}, {10}}, []int{9}},
		// Column 1 is read from its second-to-last element and column 2
		// from its second element.
		{[][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, []int{1, 3}},
		// Index 1 is out of range for single-element columns.
		{[][]int{{1}, {2}, {3}}, []int{1, 0}},
	} {
		got := ColumnDiffs(tt.cols)
		if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
			t.Errorf("ColumnDiffs(%v): got %v; want %v", tt.cols, got, tt.want)
		}
	}
}

func TestColumnSort(t *testing.T) {
	rs := example()
	ColumnSort(rs)
	for i, r := range rs {
		if r.Difference != 6 {
			t.Errorf("row %d: got difference %d; want 6", i, r.Difference)
		}
	}
	if got, want := Sum(rs), 18; got != want {
		t.Errorf("got sum %d; want %d", got, want)
	}
	// Numbers are not reordered.
	if diff := pretty.Diff(rs[1].Numbers, []int{9, 3}); len(diff) > 0 {
		t.Errorf("row 1 numbers changed: %v", rs[1].Numbers)
	}
}

func TestColumnSortDeterministic(t *testing.T) {
	const input = "3 4\n9 3\n2 5\n-7 12\n0 0\n"
	var results [][]int
	for i := 0; i < 2; i++ {
		rs, _, err := rows.Parse(strings.NewReader(input))
		if err != nil {
			t.Fatal(err)
		}
		ColumnSort(rs)
		var diffs []int
		for _, r := range rs {
			diffs = append(diffs, r.Difference)
		}
		results = append(results, diffs)
	}
	if diff := pretty.Diff(results[0], results[1]); len(diff) > 0 {
		t.Errorf("ColumnSort is not deterministic: %v vs %v", results[0], results[1])
	}
}

func TestColumnSortEmpty(t *testing.T) {
	var rs []rows.Row
	ColumnSort(rs)
	if got := Sum(rs); got != 0 {
		t.Errorf("got %d; want 0", got)
	}
}

func TestColumnSortSingleColumn(t *testing.T) {
	rs := []rows.Row{
		{Numbers: []int{4}, Difference: 4},
		{Numbers: []int{1}, Difference: 1},
	}
	ColumnSort(rs)
	if got := Sum(rs); got != 0 {
		t.Errorf("got %d; want 0", got)
	}
}

func TestColumnSortClone(t *testing.T) {
	orig := example()
	c := rows.Clone(orig)
	ColumnSort(c)
	if got, want := Naive(orig), 10; got != want {
		t.Errorf("original rows: got %d; want %d", got, want)
	}
	if got, want := Sum(c), 18; got != want {
		t.Errorf("cloned rows: got %d; want %d", got, want)
	}
}

func TestTransposeRaggedRows(t *testing.T) {
	rs := []rows.Row{
		{Numbers: []int{1, 2}},
		{Numbers: []int{3}},
		{Numbers: []int{4, 5, 6}},
	}
	got := Transpose(rs)
	want := [][]int{{1, 3, 4}, {2, 5}}
	if diff := pretty.Diff(got, want); len(diff) > 0 {
		t.Errorf("Transpose:\n%s", strings.Join(diff, "\n"))
	}
	ColumnSort(rs)
	// Sorted: col0=[1 3 4], col1=[2 5]; |4-2| = 2 for each row.
	if got, want := Sum(rs), 6; got != want {
		t.Errorf("got sum %d; want %d", got, want)
	}
}
