package regfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// kindTitle is the first line of a single-model block.
func kindTitle(k ModelKind) string {
	switch k {
	case KindPanel:
		return "Panel OLS Model:"
	case KindVolatility:
		return "Volatility Model:"
	default:
		return "OLS Model:"
	}
}

// writeSingle renders the full text block for one model: title and
// formula, covariance type (panel), residual summary (opt-in),
// coefficient table(s), fixed effects (panel), and the summary footer.
func writeSingle(w io.Writer, m *ModelResult, opts Options) error {
	var sb strings.Builder

	sb.WriteString(kindTitle(m.Kind))
	sb.WriteByte('\n')
	if m.Formula != "" {
		sb.WriteString(wrapFormula(m.Formula, opts.MaxWidth))
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	if m.Kind == KindPanel && m.CovarianceType != "" {
		fmt.Fprintf(&sb, "Covariance Type: %s\n\n", m.CovarianceType)
	}

	if opts.IncludeResiduals && m.Residuals != nil {
		sb.WriteString("Residuals:\n")
		writeResiduals(&sb, m.Residuals, opts.Digits)
		sb.WriteByte('\n')
	}

	if m.Kind == KindVolatility {
		sb.WriteString("Mean Coefficients:\n")
		writeCoefficients(&sb, m.Coefficients, m.StatKind, opts)
		sb.WriteByte('\n')
		if len(m.VolCoefficients) > 0 {
			if m.VolProcess != "" {
				fmt.Fprintf(&sb, "Coefficients for %s:\n", m.VolProcess)
			} else {
				sb.WriteString("Volatility Coefficients:\n")
			}
			writeCoefficients(&sb, m.VolCoefficients, m.StatKind, opts)
			sb.WriteByte('\n')
		}
	} else {
		sb.WriteString("Coefficients:\n")
		writeCoefficients(&sb, m.Coefficients, m.StatKind, opts)
		sb.WriteByte('\n')
	}

	if m.Kind == KindPanel && len(m.FixedEffects) > 0 {
		sb.WriteString("Included Fixed Effects:\n")
		writeFixedEffects(&sb, m.FixedEffects)
		sb.WriteByte('\n')
	}

	sb.WriteString("Summary statistics:\n")
	writeSummary(&sb, m, opts.Digits)

	_, err := io.WriteString(w, sb.String())
	return err
}

// coefficientColumns builds the label column plus one independently
// sized column per statistic, so each column's width is driven only by
// its own header and values.
func coefficientColumns(coefs []Coefficient, stat StatKind, digits int) []column {
	names := make([]string, len(coefs))
	est := make([]float64, len(coefs))
	se := make([]float64, len(coefs))
	st := make([]float64, len(coefs))
	pv := make([]float64, len(coefs))
	for i, c := range coefs {
		names[i] = c.Name
		est[i] = c.Estimate
		se[i] = c.StdErr
		st[i] = c.Stat
		pv[i] = c.PValue
	}
	return []column{
		textColumn("", names, alignLeft),
		buildColumn("Estimate", est, digits),
		buildColumn("Std. Error", se, digits),
		buildColumn(stat.Label(), st, digits),
		buildColumn("p-Value", pv, digits),
	}
}

func writeCoefficients(sb *strings.Builder, coefs []Coefficient, stat StatKind, opts Options) {
	cols := coefficientColumns(coefs, stat, opts.Digits)
	fitLabels(cols, opts.MaxWidth)
	writeColumns(sb, cols)
}

func writeResiduals(sb *strings.Builder, r *ResidualSummary, digits int) {
	headers := []string{"Mean", "Std", "Min", "25%", "50%", "75%", "Max"}
	values := []float64{r.Mean, r.Std, r.Min, r.Q25, r.Q50, r.Q75, r.Max}
	cols := make([]column, len(headers))
	for i, h := range headers {
		cols[i] = buildColumn(h, values[i:i+1], digits)
	}
	writeColumns(sb, cols)
}

func writeFixedEffects(sb *strings.Builder, effects []FixedEffect) {
	names := make([]string, len(effects))
	counts := make([]string, len(effects))
	for i, fe := range effects {
		names[i] = fe.Name
		counts[i] = formatCount(fe.Levels)
	}
	writeColumns(sb, []column{
		textColumn("", names, alignLeft),
		textColumn("Total", counts, alignRight),
	})
}

// writeSummary emits the bulleted footer in the fixed per-kind order.
func writeSummary(sb *strings.Builder, m *ModelResult, digits int) {
	fmt.Fprintf(sb, "- Number of observations: %s\n", formatCount(m.Observations))
	switch m.Kind {
	case KindPanel:
		fmt.Fprintf(sb, "- R-squared (incl. FE): %s, Within R-squared: %s\n",
			formatNumber(m.RSquaredInclusive, digits), formatNumber(m.RSquaredWithin, digits))
		fmt.Fprintf(sb, "- F-statistic: %s, p-value: %s\n",
			formatStat(m.F.Value, digits), formatNumber(m.F.PValue, digits))
	case KindVolatility:
		if m.Distribution != "" {
			fmt.Fprintf(sb, "- Distribution: %s\n", m.Distribution)
		}
		fmt.Fprintf(sb, "- R-squared: %s, Adjusted R-squared: %s\n",
			formatNumber(m.RSquared, digits), formatNumber(m.AdjRSquared, digits))
		fmt.Fprintf(sb, "- BIC: %s, AIC: %s\n",
			formatStat(m.BIC, digits), formatStat(m.AIC, digits))
	default:
		fmt.Fprintf(sb, "- R-squared: %s, Adjusted R-squared: %s\n",
			formatNumber(m.RSquared, digits), formatNumber(m.AdjRSquared, digits))
		fmt.Fprintf(sb, "- F-statistic: %s on %d and %d DF, p-value: %s\n",
			formatStat(m.F.Value, digits), m.F.DFModel, m.F.DFResid, formatNumber(m.F.PValue, digits))
	}
}

// wrapFormula continues a formula that exceeds maxWidth on the next
// line, splitting at the last "+" before the limit.
func wrapFormula(formula string, maxWidth int) string {
	if runewidth.StringWidth(formula) <= maxWidth {
		return formula
	}
	limit := maxWidth
	if limit > len(formula) {
		limit = len(formula)
	}
	cut := strings.LastIndex(formula[:limit], "+")
	if cut <= 0 {
		return formula
	}
	return strings.TrimRight(formula[:cut], " ") + "\n + " + strings.TrimSpace(formula[cut+1:])
}
