package regfmt

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// grouped formats the comma-grouped counts and large statistics in
// summary footers. Coefficient cells never use grouping.
var grouped = message.NewPrinter(language.English)

// formatNumber renders v in fixed-point notation with digits decimal
// places. Negative values keep their sign; positive values get no
// leading "+". NaN and infinities render as fixed placeholders so
// columns containing them keep a defined width.
func formatNumber(v float64, digits int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', digits, 64)
}

// formatCount renders an integer with thousands separators.
func formatCount(n int) string {
	return grouped.Sprintf("%d", n)
}

// formatStat renders a footer statistic with thousands separators and
// digits decimal places.
func formatStat(v float64, digits int) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return grouped.Sprint(number.Decimal(v, number.Scale(digits)))
}
