package regfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL(w io.Writer, models []*ModelResult) error {
	enc := json.NewEncoder(w)
	for _, m := range models {
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return nil
}
