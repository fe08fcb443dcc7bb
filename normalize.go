package regfmt

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// --- Upstream Result Interfaces ---

// Fitted is the minimal interface shared by all supported model
// results. Formula returns the model formula, e.g. "y ~ x1 + x2".
type Fitted interface {
	Formula() string
	Coefficients() []Coefficient
	Observations() int
}

// Linear marks an ordinary least squares result.
type Linear interface {
	Fitted
	RSquared() float64
	AdjRSquared() float64
	FStatistic() FStat
}

// Panel marks a fixed-effects panel regression result.
type Panel interface {
	Fitted
	RSquaredInclusive() float64
	RSquaredWithin() float64
	FStatistic() FStat
	FixedEffects() []FixedEffect
	CovarianceType() string
}

// Volatility marks a volatility-model result (GARCH family).
// Coefficients returns the mean-process block; VolatilityCoefficients
// returns the volatility-process block.
type Volatility interface {
	Fitted
	RSquared() float64
	AdjRSquared() float64
	AIC() float64
	BIC() float64
	Distribution() string
	VolatilityProcess() string
	VolatilityCoefficients() []Coefficient
}

// --- Optional Interfaces ---

// Tested reports which test statistic the model's coefficients carry.
// Results that do not implement it default to [StatT].
type Tested interface {
	StatKind() StatKind
}

// Residualed provides raw residuals and enables the Residuals block.
type Residualed interface {
	Residuals() []float64
}

// Supported reports whether result is a recognized model result shape.
func Supported(result any) bool {
	switch result.(type) {
	case *ModelResult, Panel, Volatility, Linear:
		return true
	}
	return false
}

// Normalize converts a supported upstream result into a ModelResult.
// Already-normalized values pass through after validation only.
func Normalize(result any) (*ModelResult, error) {
	var m *ModelResult
	switch r := result.(type) {
	case *ModelResult:
		if err := r.validate(); err != nil {
			return nil, err
		}
		return r, nil
	case Panel:
		m = &ModelResult{
			Kind:              KindPanel,
			Coefficients:      append([]Coefficient(nil), r.Coefficients()...),
			Observations:      r.Observations(),
			RSquaredInclusive: r.RSquaredInclusive(),
			RSquaredWithin:    r.RSquaredWithin(),
			F:                 r.FStatistic(),
			FixedEffects:      append([]FixedEffect(nil), r.FixedEffects()...),
			CovarianceType:    r.CovarianceType(),
		}
	case Volatility:
		m = &ModelResult{
			Kind:            KindVolatility,
			Coefficients:    append([]Coefficient(nil), r.Coefficients()...),
			VolCoefficients: append([]Coefficient(nil), r.VolatilityCoefficients()...),
			Observations:    r.Observations(),
			RSquared:        r.RSquared(),
			AdjRSquared:     r.AdjRSquared(),
			AIC:             r.AIC(),
			BIC:             r.BIC(),
			Distribution:    r.Distribution(),
			VolProcess:      r.VolatilityProcess(),
		}
	case Linear:
		m = &ModelResult{
			Kind:         KindLinear,
			Coefficients: append([]Coefficient(nil), r.Coefficients()...),
			Observations: r.Observations(),
			RSquared:     r.RSquared(),
			AdjRSquared:  r.AdjRSquared(),
			F:            r.FStatistic(),
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedResult, result)
	}

	m.Formula = collapseSpaces(result.(Fitted).Formula())
	m.Dependent = dependentVar(m.Formula)
	if t, ok := result.(Tested); ok {
		m.StatKind = t.StatKind()
	}
	if r, ok := result.(Residualed); ok {
		m.Residuals = summarizeResiduals(r.Residuals())
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *ModelResult) validate() error {
	if err := validateCoefficients(m.Coefficients); err != nil {
		return err
	}
	return validateCoefficients(m.VolCoefficients)
}

func validateCoefficients(coefs []Coefficient) error {
	seen := make(map[string]struct{}, len(coefs))
	for _, c := range coefs {
		if _, dup := seen[c.Name]; dup {
			return fmt.Errorf("%w: duplicate coefficient %q", ErrInvalidResult, c.Name)
		}
		seen[c.Name] = struct{}{}
		if c.StdErr < 0 {
			return fmt.Errorf("%w: negative standard error for %q", ErrInvalidResult, c.Name)
		}
		if !math.IsNaN(c.PValue) && (c.PValue < 0 || c.PValue > 1) {
			return fmt.Errorf("%w: p-value %v for %q outside [0, 1]", ErrInvalidResult, c.PValue, c.Name)
		}
	}
	return nil
}

// collapseSpaces reduces all runs of whitespace to single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dependentVar extracts the left-hand side of a formula. Formulas
// without a "~" are returned whole.
func dependentVar(formula string) string {
	dep, _, found := strings.Cut(formula, "~")
	if !found {
		return formula
	}
	return strings.TrimSpace(dep)
}

// summarizeResiduals computes the residual distribution summary:
// mean, sample standard deviation, min, linearly interpolated
// quartiles, and max. Returns nil for an empty slice.
func summarizeResiduals(resid []float64) *ResidualSummary {
	if len(resid) == 0 {
		return nil
	}
	sorted := append([]float64(nil), resid...)
	sort.Float64s(sorted)

	n := float64(len(resid))
	var sum float64
	for _, v := range resid {
		sum += v
	}
	mean := sum / n

	var std float64
	if len(resid) > 1 {
		var ss float64
		for _, v := range resid {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / (n - 1))
	}

	return &ResidualSummary{
		Mean: mean,
		Std:  std,
		Min:  sorted[0],
		Q25:  quantile(sorted, 0.25),
		Q50:  quantile(sorted, 0.50),
		Q75:  quantile(sorted, 0.75),
		Max:  sorted[len(sorted)-1],
	}
}

// quantile computes the q-th quantile of sorted values, interpolating
// linearly between order statistics.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
