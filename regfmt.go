package regfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat  = errors.New("unsupported format")
	ErrUnsupportedResult  = errors.New("unsupported result type")
	ErrInvalidResult      = errors.New("invalid result")
	ErrInvalidOption      = errors.New("invalid option")
	ErrInconsistentModels = errors.New("inconsistent models")
	ErrInvalidTemplate    = errors.New("invalid template")
)

// Format represents an output format.
type Format string

const (
	Text     Format = "text"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	CSV      Format = "csv"
	Markdown Format = "markdown"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Text, JSON, JSONL, YAML, CSV, Markdown}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each result by executing a
// Go text/template against its normalized [ModelResult].
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Options configures a render call. The zero value is not valid; start
// from [DefaultOptions].
type Options struct {
	// Digits is the number of decimal places for numeric cells.
	Digits int `yaml:"digits"`
	// IncludeResiduals adds the Residuals block for results that
	// expose raw residuals.
	IncludeResiduals bool `yaml:"include_residuals"`
	// MaxWidth bounds the rendered width of comparison tables, the
	// formula line, and coefficient labels.
	MaxWidth int `yaml:"max_width"`
}

// DefaultOptions returns the default rendering configuration.
func DefaultOptions() Options {
	return Options{Digits: 3, IncludeResiduals: false, MaxWidth: 64}
}

func (o Options) validate() error {
	if o.Digits < 0 {
		return fmt.Errorf("%w: digits must be non-negative, got %d", ErrInvalidOption, o.Digits)
	}
	if o.MaxWidth <= 0 {
		return fmt.Errorf("%w: max_width must be positive, got %d", ErrInvalidOption, o.MaxWidth)
	}
	return nil
}

// Write renders results to w in the given format. One result produces
// the single-model layout; two or more produce the side-by-side
// comparison. Results may be upstream objects implementing [Linear],
// [Panel], or [Volatility], or already-normalized [*ModelResult]
// values. Comparing results of different kinds is an error.
func Write(w io.Writer, f Format, opts Options, results ...any) error {
	if err := opts.validate(); err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}
	models := make([]*ModelResult, len(results))
	for i, r := range results {
		m, err := Normalize(r)
		if err != nil {
			return err
		}
		models[i] = m
	}
	for _, m := range models[1:] {
		if m.Kind != models[0].Kind {
			return fmt.Errorf("%w: cannot compare %s and %s results",
				ErrInconsistentModels, models[0].Kind, m.Kind)
		}
	}
	switch f {
	case Text:
		if len(models) == 1 {
			return writeSingle(w, models[0], opts)
		}
		return writeComparison(w, models, opts)
	case JSON:
		return writeJSON(w, models)
	case JSONL:
		return writeJSONL(w, models)
	case YAML:
		return writeYAML(w, models)
	case CSV:
		return writeCSV(w, models)
	case Markdown:
		return writeMarkdown(w, models, opts)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, models)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Render renders results as plain text and returns the string.
func Render(opts Options, results ...any) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, Text, opts, results...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Marshal renders results in the given format and returns the bytes.
func Marshal(f Format, opts Options, results ...any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, opts, results...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
