// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package partition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan(t *testing.T) {
	for _, tc := range []struct{ m, n, workers, rowAlign, colAlign int }{
		{1, 1, 1, 6, 16},
		{100, 100, 1, 6, 16},
		{100, 37, 4, 6, 16},
		{37, 1000, 4, 6, 64},
		{7, 7, 32, 6, 16},
		{1000, 1000, 6, 72, 256},
		{64, 4096, 16, 6, 64},
		{0, 10, 4, 6, 16},
	} {
		t.Run(fmt.Sprintf("%dx%d/%d", tc.m, tc.n, tc.workers), func(t *testing.T) {
			parts := Plan(tc.m, tc.n, tc.workers, tc.rowAlign, tc.colAlign)
			require.NotEmpty(t, parts)
			require.NoError(t, Validate(parts, tc.m, tc.n))
			assert.LessOrEqual(t, len(parts), max(tc.workers, 1))
			for i, p := range parts {
				assert.Equal(t, i, p.Index)
				if p.Rows.End != tc.m {
					assert.Zero(t, p.Rows.Len()%tc.rowAlign, "%s", p)
				}
				if p.Cols.End != tc.n {
					assert.Zero(t, p.Cols.Len()%tc.colAlign, "%s", p)
				}
			}
		})
	}
}

func TestPlanSplitsLargerDimension(t *testing.T) {
	parts := Plan(600, 64, 4, 6, 16)
	require.Len(t, parts, 4)
	for _, p := range parts {
		assert.Equal(t, Range{0, 64}, p.Cols)
	}
	parts = Plan(6, 640, 4, 6, 16)
	require.Len(t, parts, 4)
	for _, p := range parts {
		assert.Equal(t, Range{0, 6}, p.Rows)
	}
}

func TestValidate(t *testing.T) {
	ok := []Partition{
		{Index: 0, Rows: Range{0, 5}, Cols: Range{0, 10}},
		{Index: 1, Rows: Range{5, 10}, Cols: Range{0, 10}},
	}
	require.NoError(t, Validate(ok, 10, 10))

	overlap := []Partition{
		{Index: 0, Rows: Range{0, 6}, Cols: Range{0, 10}},
		{Index: 1, Rows: Range{5, 10}, Cols: Range{0, 10}},
	}
	require.ErrorContains(t, Validate(overlap, 10, 10), "overlaps")

	gap := []Partition{{Rows: Range{0, 5}, Cols: Range{0, 10}}}
	require.ErrorContains(t, Validate(gap, 10, 10), "cover")

	outside := []Partition{{Rows: Range{0, 11}, Cols: Range{0, 10}}}
	require.ErrorContains(t, Validate(outside, 10, 10), "out of")
}

func TestOwns(t *testing.T) {
	p := Partition{Index: 3, Rows: Range{2, 4}, Cols: Range{10, 20}}
	assert.True(t, p.Owns(2, 10))
	assert.True(t, p.Owns(3, 19))
	assert.False(t, p.Owns(4, 10))
	assert.False(t, p.Owns(2, 20))
	assert.Equal(t, 20, p.Size())
	assert.Equal(t, "partition#3[rows 2:4, cols 10:20]", p.String())
}
