// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package partition splits the output of a GEMM into disjoint rectangles, one per unit of parallel work.
//
// A Partition is the ownership token of its rectangle: a worker only writes the C (or output) elements its
// partition owns, so no two workers ever write the same element.
package partition

import (
	"fmt"

	"github.com/pkg/errors"
)

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

// Len returns the number of elements in the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains returns whether i is in the range.
func (r Range) Contains(i int) bool {
	return i >= r.Start && i < r.End
}

func (r Range) overlaps(o Range) bool {
	return r.Start < o.End && o.Start < r.End
}

// Partition is a rectangle of the M×N output owned by one unit of work.
type Partition struct {
	Index      int
	Rows, Cols Range
}

// Owns returns whether the partition owns the output element (row, col).
func (p Partition) Owns(row, col int) bool {
	return p.Rows.Contains(row) && p.Cols.Contains(col)
}

// Size returns the number of output elements owned.
func (p Partition) Size() int {
	return p.Rows.Len() * p.Cols.Len()
}

// String implements fmt.Stringer.
func (p Partition) String() string {
	return fmt.Sprintf("partition#%d[rows %d:%d, cols %d:%d]", p.Index, p.Rows.Start, p.Rows.End, p.Cols.Start, p.Cols.End)
}

// Plan splits an m×n output for the given number of workers.
//
// The larger dimension is split: rows in multiples of rowAlign, columns in multiples of colAlign (except for
// the last partition of each dimension). Fewer partitions than workers are returned when the output is too
// small, and a single partition covering everything for workers <= 1.
func Plan(m, n, workers, rowAlign, colAlign int) []Partition {
	rowAlign, colAlign = max(rowAlign, 1), max(colAlign, 1)
	if workers <= 1 || m == 0 || n == 0 {
		return []Partition{{Rows: Range{0, m}, Cols: Range{0, n}}}
	}
	var rowSplits, colSplits []Range
	if m >= n {
		rowSplits = split(m, workers, rowAlign)
		colSplits = []Range{{0, n}}
		if len(rowSplits) < workers {
			colSplits = split(n, workers/len(rowSplits), colAlign)
		}
	} else {
		colSplits = split(n, workers, colAlign)
		rowSplits = []Range{{0, m}}
		if len(colSplits) < workers {
			rowSplits = split(m, workers/len(colSplits), rowAlign)
		}
	}
	parts := make([]Partition, 0, len(rowSplits)*len(colSplits))
	for _, rows := range rowSplits {
		for _, cols := range colSplits {
			parts = append(parts, Partition{Index: len(parts), Rows: rows, Cols: cols})
		}
	}
	return parts
}

// split divides size into at most parts ranges, each a multiple of align except for the last.
func split(size, parts, align int) []Range {
	units := (size + align - 1) / align
	parts = max(min(parts, units), 1)
	perPart := (units + parts - 1) / parts
	step := perPart * align
	ranges := make([]Range, 0, parts)
	for start := 0; start < size; start += step {
		ranges = append(ranges, Range{start, min(start+step, size)})
	}
	return ranges
}

// Validate checks that the partitions are disjoint and cover the m×n output.
func Validate(parts []Partition, m, n int) error {
	total := 0
	for i, p := range parts {
		if p.Rows.Start < 0 || p.Rows.End > m || p.Cols.Start < 0 || p.Cols.End > n ||
			p.Rows.Len() < 0 || p.Cols.Len() < 0 {
			return errors.Errorf("%s is out of the %dx%d output", p, m, n)
		}
		for _, o := range parts[:i] {
			if p.Rows.overlaps(o.Rows) && p.Cols.overlaps(o.Cols) {
				return errors.Errorf("%s overlaps %s", p, o)
			}
		}
		total += p.Size()
	}
	if total != m*n {
		return errors.Errorf("partitions cover %d elements of the %dx%d output", total, m, n)
	}
	return nil
}
