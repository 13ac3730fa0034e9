// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/lpgemm"
	"github.com/gomlx/lpgemm/internal/cpuinfo"
	"github.com/gomlx/lpgemm/pkg/core/kernels"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
	redRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)

	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 4, 1, 4)
)

// TableWithReds is a table where selected rows are highlighted in red.
type TableWithReds struct {
	Table *lgtable.Table
	Count int
	Reds  map[int]bool
}

func (t *TableWithReds) Row(isRed bool, row ...string) {
	if isRed {
		t.Reds[t.Count] = true
	}
	t.Table.Row(row...)
	t.Count++
}

func newPlainTable(withHeader bool, alignments ...lipgloss.Position) *lgtable.Table {
	return newPlainTableWithReds(withHeader, alignments...).Table
}

func newPlainTableWithReds(withHeader bool, alignments ...lipgloss.Position) *TableWithReds {
	t := &TableWithReds{
		Reds: make(map[int]bool),
	}
	t.Table = lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if withHeader && row < 0 {
				s = headerRowStyle
				return
			}
			if t.Reds[row] {
				s = redRowStyle
			} else if row%2 == 0 {
				s = oddRowStyle
			} else {
				s = evenRowStyle
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			s = s.Align(alignment)
			return
		})
	return t
}

func engineTable(e *lpgemm.Engine) *lgtable.Table {
	table := newPlainTable(false, lipgloss.Right, lipgloss.Left)
	table.Row("CPU level", e.Level().String())
	if f := cpuinfo.Detect(); f.VectorTarget != "" {
		table.Row("vector target", fmt.Sprintf("%s (%d bytes)", f.VectorTarget, f.VectorWidth))
	}
	table.Row("parallelism", humanize.Comma(int64(e.Parallelism())))
	for _, triple := range kernels.Triples {
		table.Row(triple.String(), e.Family(triple))
	}
	return table
}

func resultsTable(results []Result) *TableWithReds {
	t := newPlainTableWithReds(true, lipgloss.Left, lipgloss.Right, lipgloss.Left, lipgloss.Right)
	t.Table.Headers("Triple", "M×N×K", "Kernel", "Operands", "Calls", "Per call", "GOPS", "Check")
	for _, r := range results {
		operands := uint64(r.Shape.M*r.Shape.K + r.Shape.K*r.Shape.N + r.Shape.M*r.Shape.N*int(r.Triple.C.Size()))
		check := "-"
		if r.Checked {
			check = "ok"
			if r.Mismatch > 0 {
				check = fmt.Sprintf("%s wrong", humanize.Comma(int64(r.Mismatch)))
			}
		}
		t.Row(r.Mismatch > 0,
			r.Triple.String(), r.Shape.String(), r.Family,
			humanize.Bytes(operands),
			humanize.Comma(int64(r.Calls)),
			r.PerCall.String(),
			fmt.Sprintf("%.1f", r.GOPS()),
			check)
	}
	return t
}
