package regfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"
	"text/template"
)

// WriteIter renders results from an iterator. JSONL and GoTemplate
// write each result as it arrives; every other format needs the whole
// model set before any output (the comparison layout sizes its columns
// from all models), so items are collected into a slice first.
func WriteIter(w io.Writer, f Format, opts Options, seq iter.Seq[any]) error {
	if f == JSONL {
		return streamJSONL(w, opts, seq)
	}
	if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
		return streamGoTemplate(w, tmpl, opts, seq)
	}
	var results []any
	seq(func(r any) bool {
		results = append(results, r)
		return true
	})
	return Write(w, f, opts, results...)
}

// WriteChan formats results from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, f Format, opts Options, ch <-chan any) error {
	return WriteIter(w, f, opts, chanToIter(ch))
}

func chanToIter(ch <-chan any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for r := range ch {
			if !yield(r) {
				return
			}
		}
	}
}

func streamJSONL(w io.Writer, opts Options, seq iter.Seq[any]) error {
	if err := opts.validate(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	var streamErr error
	seq(func(r any) bool {
		m, err := Normalize(r)
		if err != nil {
			streamErr = err
			return false
		}
		if err := enc.Encode(m); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

func streamGoTemplate(w io.Writer, tmplStr string, opts Options, seq iter.Seq[any]) error {
	if err := opts.validate(); err != nil {
		return err
	}
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	var streamErr error
	seq(func(r any) bool {
		m, err := Normalize(r)
		if err != nil {
			streamErr = err
			return false
		}
		if err := tmpl.Execute(w, m); err != nil {
			streamErr = err
			return false
		}
		if _, err := fmt.Fprintln(w); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}
