// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables for terminal
// reports.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	cells []textCell
	cols  int
	rows  int

	// rules maps row numbers to the character their rule is
	// drawn with.
	rules map[int]rune

	minWidth []int

	curRow, curCol int
}

type textCell struct {
	row, col   int
	value      string
	leftMargin string
	alignment  align
}

type CellOption func(c *textCell)

func LeftMargin(x string) CellOption {
	return func(c *textCell) {
		c.leftMargin = x
	}
}

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft }
	Center            = func(c *textCell) { c.alignment = alignCenter }
	Right             = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

func (a align) lpad(s string, w int) string {
	switch a {
	default:
		return s
	case alignCenter:
		l := (w - utf8.RuneCountInString(s)) / 2
		return fmt.Sprintf("%*s%s", l, "", s)
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	if t.rows > 0 {
		t.curRow++
	}
	t.rows = t.curRow + 1
	t.curCol = 0
	return t
}

// Col skips to column "col" in table t. Columns are numbered starting
// at 0.
func (t *Table) Col(col int) *Table {
	if col < t.curCol {
		panic(fmt.Sprintf("cannot move from column %d to earlier column %d", t.curCol, col))
	}
	t.curCol = col
	return t
}

// Cell adds a cell at the current row and column.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if t.rows == 0 || t.rules[t.curRow] != 0 {
		t.Row()
	}
	lMargin := " "
	if t.curCol == 0 || len(value) == 0 {
		// For the left-most column or empty cells, we default
		// to no left margin.
		lMargin = ""
	}
	t.cells = append(t.cells, textCell{t.curRow, t.curCol, value, lMargin, alignLeft})
	for _, o := range opts {
		o(&t.cells[len(t.cells)-1])
	}

	t.curCol++
	if t.curCol > t.cols {
		t.cols = t.curCol
	}
	return t
}

// Rule adds a row that is a horizontal line of ch spanning the full
// width of the table.
func (t *Table) Rule(ch rune) *Table {
	t.Row()
	if t.rules == nil {
		t.rules = make(map[int]rune)
	}
	t.rules[t.curRow] = ch
	return t
}

// SetMinWidth sets the minimum width of column col, not counting its
// left margin.
func (t *Table) SetMinWidth(col, width int) {
	for len(t.minWidth) < col+1 {
		t.minWidth = append(t.minWidth, 0)
	}
	t.minWidth[col] = width
	if col+1 > t.cols {
		t.cols = col + 1
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// offsets returns the starting offset of each column's left margin,
// followed by the width of the table, and the width of each column's
// left margin.
func (t *Table) offsets() (offs, lmargin []int) {
	// Collect max length margin for each column. Every column
	// after the first has at least the default single space, so
	// columns with no cells still line up.
	lmargin = make([]int, t.cols)
	for col := 1; col < t.cols; col++ {
		lmargin[col] = 1
	}
	for _, cell := range t.cells {
		lmargin[cell.col] = max(utf8.RuneCountInString(cell.leftMargin), lmargin[cell.col])
	}

	// Compute column widths, not including their left margins.
	ws := make([]int, t.cols)
	copy(ws, t.minWidth)
	for _, cell := range t.cells {
		ws[cell.col] = max(ws[cell.col], utf8.RuneCountInString(cell.value))
	}

	// Convert column widths into starting offsets. The offset of
	// column i is where i's left margin begins. The slice
	// includes a final offset for the width of the table.
	offs = make([]int, t.cols+1)
	off := 0
	for i, w := range ws {
		offs[i] = off
		off += lmargin[i] + w
	}
	offs[len(ws)] = off
	return offs, lmargin
}

// Width returns the width of t as it would be formatted.
func (t *Table) Width() int {
	offs, _ := t.offsets()
	return offs[len(offs)-1]
}

// Format lays out table t and writes it to w.
func (t *Table) Format(w io.Writer) error {
	offs, lmargin := t.offsets()
	width := offs[len(offs)-1]

	// Cells are already in top-to-bottom left-to-right order
	// unless the caller skipped columns with Col, which only
	// moves forward.
	ci := 0
	for row := 0; row < t.rows; row++ {
		if ch := t.rules[row]; ch != 0 {
			if _, err := fmt.Fprintf(w, "%s\n", strings.Repeat(string(ch), width)); err != nil {
				return err
			}
			continue
		}

		var line strings.Builder
		off := 0
		for ; ci < len(t.cells) && t.cells[ci].row == row; ci++ {
			cell := t.cells[ci]
			if strings.TrimSpace(cell.value) == "" && strings.TrimSpace(cell.leftMargin) == "" {
				// Skip empty cells. This avoids printing
				// unnecessary trailing spaces if cells
				// appear at the end of a row.
				continue
			}

			// Space to the cell's starting offset and print
			// its left margin.
			spaces := offs[cell.col] - off
			fmt.Fprintf(&line, "%*s%*s", spaces, "", lmargin[cell.col], cell.leftMargin)
			off += spaces + lmargin[cell.col]

			// Print cell contents.
			tw := offs[cell.col+1] - offs[cell.col] - lmargin[cell.col]
			s := cell.alignment.lpad(cell.value, tw)
			line.WriteString(s)
			off += utf8.RuneCountInString(s)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line.String()); err != nil {
			return err
		}
	}
	return nil
}
