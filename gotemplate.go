package regfmt

import (
	"fmt"
	"io"
	"text/template"
)

func writeGoTemplate(w io.Writer, tmplStr string, models []*ModelResult) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, m := range models {
		if err := tmpl.Execute(w, m); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
