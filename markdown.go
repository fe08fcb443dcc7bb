package regfmt

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders a GitHub-flavored Markdown table: the
// coefficient table(s) for one model, or the comparison grid for
// several. Markdown viewers reflow tables, so MaxWidth does not apply.
func writeMarkdown(w io.Writer, models []*ModelResult, opts Options) error {
	if len(models) > 1 {
		return markdownTable(w, comparisonColumns(models, opts.Digits))
	}
	m := models[0]
	if err := markdownTable(w, coefficientColumns(m.Coefficients, m.StatKind, opts.Digits)); err != nil {
		return err
	}
	if m.Kind == KindVolatility && len(m.VolCoefficients) > 0 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return markdownTable(w, coefficientColumns(m.VolCoefficients, m.StatKind, opts.Digits))
	}
	return nil
}

func markdownTable(w io.Writer, cols []column) error {
	// Minimum width 3 leaves room for the alignment markers.
	for i := range cols {
		if cols[i].width < 3 {
			cols[i].width = 3
		}
	}

	if err := writeMarkdownRow(w, headerCells(cols), cols); err != nil {
		return err
	}

	sep := make([]string, len(cols))
	for i, c := range cols {
		switch c.align {
		case alignRight:
			sep[i] = strings.Repeat("-", c.width-1) + ":"
		case alignCenter:
			sep[i] = ":" + strings.Repeat("-", c.width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", c.width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	nRows := 0
	for _, c := range cols {
		if len(c.cells) > nRows {
			nRows = len(c.cells)
		}
	}
	for r := 0; r < nRows; r++ {
		cells := make([]string, len(cols))
		blank := true
		for i, c := range cols {
			if r < len(c.cells) {
				cells[i] = c.cells[r]
			}
			if cells[i] != "" {
				blank = false
			}
		}
		// The text layout separates sections with blank rows; Markdown
		// tables have no equivalent, so those rows are dropped.
		if blank {
			continue
		}
		if err := writeMarkdownRow(w, cells, cols); err != nil {
			return err
		}
	}
	return nil
}

func headerCells(cols []column) []string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		cells[i] = c.header
	}
	return cells
}

func writeMarkdownRow(w io.Writer, cells []string, cols []column) error {
	padded := make([]string, len(cols))
	for i, c := range cols {
		padded[i] = alignCell(cells[i], c.width, c.align)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
