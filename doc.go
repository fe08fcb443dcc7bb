// Package regfmt renders fitted regression-model results as
// fixed-width, human-readable text suitable for terminals and
// documents. It does no statistical estimation: model fitting happens
// upstream, and regfmt turns the numbers into aligned tables.
//
// The central entry points are [Write], [Render], and [Marshal], which
// accept an immutable [Options] value and one or more fitted results.
// One result produces the single-model layout (title, coefficient
// table, summary statistics); two or more produce a side-by-side
// comparison sharing a row set of coefficient names.
//
// # Interface Design
//
// Upstream results plug in through a closed set of interfaces, one per
// model family, plus optional interfaces that enhance the rendering:
//
//   - [Linear] → ordinary least squares results
//   - [Panel] → fixed-effects panel results (covariance type, fixed
//     effects table)
//   - [Volatility] → GARCH-family results (volatility coefficient
//     block, distribution line)
//   - [Tested] → selects the t- or z-statistic column label
//   - [Residualed] → enables the Residuals block
//
// Values of any other shape are rejected with [ErrUnsupportedResult];
// use [Supported] to check first. [Normalize] exposes the intermediate
// [ModelResult] for callers that want to build or inspect it directly,
// and normalized values pass straight through the entry points.
//
// # Options
//
// Rendering is a pure function of its inputs: [Options] is passed per
// call and never stored. Start from [DefaultOptions] (3 digits, no
// residuals, 64-column width). [ParseOptions] decodes a YAML options
// document and rejects unknown keys rather than silently ignoring
// them.
//
// # Width Policy
//
// Every column is sized to the wider of its header and its widest
// formatted value, so vertical alignment is exact on every row. When a
// comparison table would exceed MaxWidth, numeric precision is reduced
// before anything else; model columns are never dropped.
//
// # Formats
//
// Text is the core format. The normalized results are also available
// as JSON, JSONL, YAML, CSV (one tidy row per coefficient), Markdown,
// and via [GoTemplate] for custom layouts. Use [ParseFormat] to
// convert a CLI flag string into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedResult] — value is not a recognized result shape
//   - [ErrInvalidResult] — recognized shape with unrenderable data
//     (duplicate names, negative standard error, p-value out of range)
//   - [ErrInvalidOption] — option value outside its valid domain, or
//     an unknown key in a YAML options document
//   - [ErrInconsistentModels] — comparison across different model kinds
//   - [ErrInvalidTemplate] — invalid go-template syntax
//
// All errors are returned synchronously before any partial output is
// written.
package regfmt
