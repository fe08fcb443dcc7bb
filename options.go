package regfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseOptions decodes a YAML options document, e.g. from a config
// file or a CLI flag value:
//
//	digits: 2
//	include_residuals: true
//	max_width: 80
//
// Unknown keys are rejected rather than silently ignored. Missing keys
// keep their defaults, and an empty document yields [DefaultOptions].
func ParseOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return Options{}, fmt.Errorf("%w: %s", ErrInvalidOption, err)
	}
	if err := opts.validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
