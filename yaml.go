package regfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, models []*ModelResult) error {
	enc := yaml.NewEncoder(w)
	if len(models) == 1 {
		if err := enc.Encode(models[0]); err != nil {
			return err
		}
	} else {
		if err := enc.Encode(models); err != nil {
			return err
		}
	}
	return enc.Close()
}
