package regfmt

import (
	"fmt"
	"io"
	"strings"
)

// statDigits is the precision of the parenthesized statistic in
// comparison cells.
const statDigits = 2

// writeComparison renders the side-by-side table: one label column and
// one centered column per model. When the natural layout exceeds
// MaxWidth, numeric precision is reduced first; dropping a model
// column would silently lose information, so it never happens. Labels
// are truncated only as a last resort.
func writeComparison(w io.Writer, models []*ModelResult, opts Options) error {
	digits := opts.Digits
	cols := comparisonColumns(models, digits)
	for tableWidth(cols) > opts.MaxWidth && digits > 0 {
		digits--
		cols = comparisonColumns(models, digits)
	}
	fitLabels(cols, opts.MaxWidth)

	var sb strings.Builder
	writeColumns(&sb, cols)
	_, err := io.WriteString(w, sb.String())
	return err
}

// unionNames returns all distinct coefficient names across models in
// first-seen order.
func unionNames(models []*ModelResult) []string {
	var names []string
	seen := make(map[string]struct{})
	for _, m := range models {
		for _, c := range m.Coefficients {
			if _, ok := seen[c.Name]; ok {
				continue
			}
			seen[c.Name] = struct{}{}
			names = append(names, c.Name)
		}
	}
	return names
}

func comparisonColumns(models []*ModelResult, digits int) []column {
	sd := statDigits
	if digits < sd {
		sd = digits
	}
	names := unionNames(models)
	meta := metadataLabels(models[0].Kind)

	labels := make([]string, 0, len(names)+len(meta)+2)
	labels = append(labels, "")
	labels = append(labels, names...)
	labels = append(labels, "")
	labels = append(labels, meta...)

	cols := make([]column, 0, len(models)+1)
	cols = append(cols, textColumn("Outcome", labels, alignLeft))

	for _, m := range models {
		byName := make(map[string]Coefficient, len(m.Coefficients))
		for _, c := range m.Coefficients {
			byName[c.Name] = c
		}
		cells := make([]string, 0, len(labels))
		cells = append(cells, "")
		for _, name := range names {
			c, ok := byName[name]
			if !ok {
				// A missing coefficient is a blank cell, never a zero.
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprintf("%s (%s)",
				formatNumber(c.Estimate, digits), formatNumber(c.Stat, sd)))
		}
		cells = append(cells, "")
		cells = append(cells, metadataCells(m, digits)...)
		cols = append(cols, textColumn(m.Dependent, cells, alignCenter))
	}
	return cols
}

func metadataLabels(kind ModelKind) []string {
	switch kind {
	case KindPanel:
		return []string{"Fixed effects", "VCOV type", "Observations", "R2 (incl. FE)", "Within R2"}
	case KindVolatility:
		return []string{"Distribution", "Observations", "R2", "Adjusted R2"}
	default:
		return []string{"Observations", "R2", "Adjusted R2"}
	}
}

func metadataCells(m *ModelResult, digits int) []string {
	switch m.Kind {
	case KindPanel:
		effects := make([]string, len(m.FixedEffects))
		for i, fe := range m.FixedEffects {
			effects[i] = fe.Name
		}
		return []string{
			strings.Join(effects, ", "),
			m.CovarianceType,
			formatCount(m.Observations),
			formatNumber(m.RSquaredInclusive, digits),
			formatNumber(m.RSquaredWithin, digits),
		}
	case KindVolatility:
		return []string{
			m.Distribution,
			formatCount(m.Observations),
			formatNumber(m.RSquared, digits),
			formatNumber(m.AdjRSquared, digits),
		}
	default:
		return []string{
			formatCount(m.Observations),
			formatNumber(m.RSquared, digits),
			formatNumber(m.AdjRSquared, digits),
		}
	}
}
