package regfmt

import (
	"encoding/json"
	"io"
)

func writeJSON(w io.Writer, models []*ModelResult) error {
	enc := json.NewEncoder(w)
	if len(models) == 1 {
		return enc.Encode(models[0])
	}
	return enc.Encode(models)
}
