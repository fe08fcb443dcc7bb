package regfmt

// ModelKind identifies the family of a fitted model.
type ModelKind int

const (
	KindLinear ModelKind = iota
	KindPanel
	KindVolatility
)

// String returns the kind name.
func (k ModelKind) String() string {
	switch k {
	case KindPanel:
		return "panel"
	case KindVolatility:
		return "volatility"
	default:
		return "linear"
	}
}

// MarshalText renders the kind name in JSON and YAML output.
func (k ModelKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// StatKind identifies the test statistic a model reports for its
// coefficients.
type StatKind int

const (
	StatT StatKind = iota
	StatZ
)

// String returns the statistic name.
func (s StatKind) String() string {
	if s == StatZ {
		return "z"
	}
	return "t"
}

// MarshalText renders the statistic name in JSON and YAML output.
func (s StatKind) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Label returns the statistic column header.
func (s StatKind) Label() string {
	if s == StatZ {
		return "z-Statistic"
	}
	return "t-Statistic"
}

// Coefficient is one estimated regression parameter. Name must be
// unique within a model, StdErr non-negative, and PValue in [0, 1].
type Coefficient struct {
	Name     string  `json:"name" yaml:"name"`
	Estimate float64 `json:"estimate" yaml:"estimate"`
	StdErr   float64 `json:"std_error" yaml:"std_error"`
	Stat     float64 `json:"statistic" yaml:"statistic"`
	PValue   float64 `json:"p_value" yaml:"p_value"`
}

// FStat is a model F-statistic. DFModel and DFResid are reported by
// linear models only; panel models leave them zero.
type FStat struct {
	Value   float64 `json:"value" yaml:"value"`
	DFModel int     `json:"df_model,omitempty" yaml:"df_model,omitempty"`
	DFResid int     `json:"df_resid,omitempty" yaml:"df_resid,omitempty"`
	PValue  float64 `json:"p_value" yaml:"p_value"`
}

// FixedEffect is one categorical grouping variable absorbed by a panel
// model, with its level count.
type FixedEffect struct {
	Name   string `json:"name" yaml:"name"`
	Levels int    `json:"levels" yaml:"levels"`
}

// ResidualSummary describes the distribution of a model's residuals.
type ResidualSummary struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Std  float64 `json:"std" yaml:"std"`
	Min  float64 `json:"min" yaml:"min"`
	Q25  float64 `json:"q25" yaml:"q25"`
	Q50  float64 `json:"q50" yaml:"q50"`
	Q75  float64 `json:"q75" yaml:"q75"`
	Max  float64 `json:"max" yaml:"max"`
}

// ModelResult is the normalized form every renderer consumes. It is
// built once per upstream result by [Normalize] and never mutated.
// Coefficient order is preserved as reported by the upstream model.
type ModelResult struct {
	Kind      ModelKind `json:"kind" yaml:"kind"`
	Dependent string    `json:"dependent" yaml:"dependent"`
	Formula   string    `json:"formula" yaml:"formula"`

	Coefficients []Coefficient `json:"coefficients" yaml:"coefficients"`
	// VolCoefficients is the volatility-process block of a volatility
	// model (omega, alpha, beta terms).
	VolCoefficients []Coefficient `json:"volatility_coefficients,omitempty" yaml:"volatility_coefficients,omitempty"`
	StatKind        StatKind      `json:"stat_kind" yaml:"stat_kind"`

	Observations int `json:"observations" yaml:"observations"`

	RSquared          float64 `json:"r_squared,omitempty" yaml:"r_squared,omitempty"`
	AdjRSquared       float64 `json:"adj_r_squared,omitempty" yaml:"adj_r_squared,omitempty"`
	RSquaredInclusive float64 `json:"r_squared_inclusive,omitempty" yaml:"r_squared_inclusive,omitempty"`
	RSquaredWithin    float64 `json:"r_squared_within,omitempty" yaml:"r_squared_within,omitempty"`
	F                 FStat   `json:"f_statistic" yaml:"f_statistic"`
	AIC               float64 `json:"aic,omitempty" yaml:"aic,omitempty"`
	BIC               float64 `json:"bic,omitempty" yaml:"bic,omitempty"`

	FixedEffects   []FixedEffect `json:"fixed_effects,omitempty" yaml:"fixed_effects,omitempty"`
	CovarianceType string        `json:"covariance_type,omitempty" yaml:"covariance_type,omitempty"`
	Distribution   string        `json:"distribution,omitempty" yaml:"distribution,omitempty"`
	// VolProcess names the volatility process, e.g. "GARCH".
	VolProcess string `json:"volatility_process,omitempty" yaml:"volatility_process,omitempty"`

	Residuals *ResidualSummary `json:"residuals,omitempty" yaml:"residuals,omitempty"`
}
