package regfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// alignment controls cell text alignment within a column.
type alignment int

const (
	alignLeft alignment = iota
	alignCenter
	alignRight
)

// column is one table column: a header plus one cell per row, sized to
// fit the widest of them.
type column struct {
	header string
	cells  []string
	width  int
	align  alignment
}

// buildColumn formats values at the given precision and sizes the
// column to fit the header and the widest formatted value. Numeric
// columns are right-aligned so decimal points line up.
func buildColumn(header string, values []float64, digits int) column {
	c := column{header: header, cells: make([]string, len(values)), align: alignRight}
	c.width = runewidth.StringWidth(header)
	for i, v := range values {
		s := formatNumber(v, digits)
		c.cells[i] = s
		if w := runewidth.StringWidth(s); w > c.width {
			c.width = w
		}
	}
	return c
}

// textColumn builds a column from pre-rendered cells.
func textColumn(header string, cells []string, align alignment) column {
	c := column{header: header, cells: cells, width: runewidth.StringWidth(header), align: align}
	for _, s := range cells {
		if w := runewidth.StringWidth(s); w > c.width {
			c.width = w
		}
	}
	return c
}

// tableWidth returns the rendered width of columns joined by single
// spaces.
func tableWidth(cols []column) int {
	n := 0
	for i, c := range cols {
		if i > 0 {
			n++
		}
		n += c.width
	}
	return n
}

// writeColumns renders the header row followed by one line per row.
// Columns are separated by a single space and trailing spaces are
// trimmed; with a right-aligned final column every line of the table
// comes out the same length.
func writeColumns(sb *strings.Builder, cols []column) {
	nRows := 0
	for _, c := range cols {
		if len(c.cells) > nRows {
			nRows = len(c.cells)
		}
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = alignCell(c.header, c.width, c.align)
	}
	sb.WriteString(strings.TrimRight(strings.Join(parts, " "), " "))
	sb.WriteByte('\n')
	for r := 0; r < nRows; r++ {
		for i, c := range cols {
			cell := ""
			if r < len(c.cells) {
				cell = c.cells[r]
			}
			parts[i] = alignCell(cell, c.width, c.align)
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, " "), " "))
		sb.WriteByte('\n')
	}
}

func alignCell(s string, width int, align alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + s
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

// fitLabels shrinks the first (label) column when the table would
// overflow maxWidth, truncating long names with a "..." marker. Labels
// are the only soft column; numeric cells never lose characters.
func fitLabels(cols []column, maxWidth int) {
	over := tableWidth(cols) - maxWidth
	if over <= 0 || len(cols) == 0 {
		return
	}
	label := &cols[0]
	minWidth := runewidth.StringWidth(label.header)
	if minWidth < 8 {
		minWidth = 8
	}
	w := label.width - over
	if w < minWidth {
		w = minWidth
	}
	if w >= label.width {
		return
	}
	label.width = w
	label.cells = truncateCells(label.cells, w)
}

// truncateCells shortens cells wider than width with a "..." marker.
func truncateCells(cells []string, width int) []string {
	out := make([]string, len(cells))
	for i, s := range cells {
		switch {
		case runewidth.StringWidth(s) <= width:
			out[i] = s
		case width <= 3:
			out[i] = runewidth.Truncate(s, width, "")
		default:
			out[i] = runewidth.Truncate(s, width, "...")
		}
	}
	return out
}
