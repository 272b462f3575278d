package ranking

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/botirk38/vecrank/similarity"
	"gopkg.in/yaml.v3"
)

// fileOptions is the YAML form of Options.
type fileOptions struct {
	Method    string   `yaml:"method"`
	TopK      *int     `yaml:"top_k"`
	Threshold *float64 `yaml:"threshold"`
}

// LoadOptions decodes ranking options from YAML, for example:
//
//	method: euclidean
//	top_k: 5
//	threshold: 0.8
//
// Absent keys stay unset. Unknown keys and unknown methods are rejected.
func LoadOptions(data []byte) (Options, error) {
	var f fileOptions
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("decode ranking options: %w", err)
	}

	var o Options
	if f.Method != "" {
		m, err := similarity.ParseMethod(f.Method)
		if err != nil {
			return Options{}, err
		}
		o.Method = m
	}
	o.TopK = f.TopK
	if f.Threshold != nil {
		if err := WithThreshold(*f.Threshold)(&o); err != nil {
			return Options{}, err
		}
	}
	return o, nil
}
