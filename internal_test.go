package regfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "3.142", formatNumber(3.14159, 3))
	assert.Equal(t, "3", formatNumber(3.14159, 0))
	assert.Equal(t, "-0.186", formatNumber(-0.186, 3))
	assert.Equal(t, "0.000", formatNumber(0, 3))
	assert.Equal(t, "NaN", formatNumber(math.NaN(), 3))
	assert.Equal(t, "Inf", formatNumber(math.Inf(1), 3))
	assert.Equal(t, "-Inf", formatNumber(math.Inf(-1), 3))
}

func TestFormatStatGrouping(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1,049.326", formatStat(1049.326, 3))
	assert.Equal(t, "22.196", formatStat(22.196, 3))
	assert.Equal(t, "NaN", formatStat(math.NaN(), 3))
}

func TestFormatCount(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "86", formatCount(86))
	assert.Equal(t, "1,000", formatCount(1000))
}

func TestBuildColumnWidth(t *testing.T) {
	t.Parallel()
	// Widest value wins over the header.
	c := buildColumn("x", []float64{-123.456, 1}, 3)
	assert.Equal(t, 8, c.width)
	assert.Equal(t, []string{"-123.456", "1.000"}, c.cells)

	// Header wins over narrow values.
	c = buildColumn("Estimate", []float64{1.5}, 3)
	assert.Equal(t, 8, c.width)
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "  ab", alignCell("ab", 4, alignRight))
	assert.Equal(t, "ab  ", alignCell("ab", 4, alignLeft))
	assert.Equal(t, " ab ", alignCell("ab", 4, alignCenter))
	assert.Equal(t, "abcd", alignCell("abcd", 2, alignLeft))
}

func TestTruncateCells(t *testing.T) {
	t.Parallel()
	got := truncateCells([]string{"short", "a_very_long_coefficient_name"}, 10)
	assert.Equal(t, "short", got[0])
	assert.Equal(t, "a_very_...", got[1])
}

func TestQuantileInterpolation(t *testing.T) {
	t.Parallel()
	sorted := []float64{1, 2, 3, 4}
	assert.InDelta(t, 1.75, quantile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 2.5, quantile(sorted, 0.50), 1e-12)
	assert.InDelta(t, 4.0, quantile(sorted, 1.0), 1e-12)
	assert.InDelta(t, 1.0, quantile(sorted, 0.0), 1e-12)
}

func TestSummarizeResiduals(t *testing.T) {
	t.Parallel()
	s := summarizeResiduals([]float64{2, -2, 1, -1, 0})
	assert.InDelta(t, 0, s.Mean, 1e-12)
	assert.InDelta(t, 1.5811388300841898, s.Std, 1e-12)
	assert.Equal(t, -2.0, s.Min)
	assert.Equal(t, -1.0, s.Q25)
	assert.Equal(t, 0.0, s.Q50)
	assert.Equal(t, 1.0, s.Q75)
	assert.Equal(t, 2.0, s.Max)

	assert.Nil(t, summarizeResiduals(nil))
}

func TestWrapFormula(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "y ~ x1 + x2", wrapFormula("y ~ x1 + x2", 64))
	assert.Equal(t, "y ~ x1\n + x2 + x3", wrapFormula("y ~ x1 + x2 + x3", 12))
}

func TestCollapseSpaces(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "y ~ x1 + x2", collapseSpaces("  y  ~\tx1 +\n x2 "))
}

func TestDependentVar(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Lottery", dependentVar("Lottery ~ Literacy + Wealth"))
	assert.Equal(t, "returns", dependentVar("returns"))
}

func TestFitLabels(t *testing.T) {
	t.Parallel()
	cols := []column{
		textColumn("", []string{"a_very_long_coefficient_name"}, alignLeft),
		buildColumn("Estimate", []float64{1.5}, 3),
	}
	fitLabels(cols, 20)
	assert.Equal(t, 11, cols[0].width)
	assert.Equal(t, "a_very_l...", cols[0].cells[0])
	assert.LessOrEqual(t, tableWidth(cols), 20)
}
