package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/montransform/monitor"
	"github.com/katalvlaran/montransform/ndarray"
	"github.com/katalvlaran/montransform/transform"
	"gopkg.in/yaml.v3"
)

// stateDoc is the on-disk form of one state or sample. YAML is a superset
// of JSON, so both encodings decode through yaml.v3.
type stateDoc struct {
	Step  *int      `json:"step,omitempty" yaml:"step"`
	Time  float64   `json:"time" yaml:"time"`
	Shape []int     `json:"shape" yaml:"shape"`
	Data  []float64 `json:"data" yaml:"data"`
}

func (d stateDoc) array() (*ndarray.Array, error) {
	if len(d.Shape) != 3 {
		return nil, fmt.Errorf("shape must have 3 axes [variable, node, mode], got %v", d.Shape)
	}

	return ndarray.FromSlice(d.Shape[0], d.Shape[1], d.Shape[2], d.Data)
}

func docFromSample(s transform.Sample) stateDoc {
	sh := s.Data.Shape()

	return stateDoc{Time: s.Time, Shape: []int{sh.Vars, sh.Nodes, sh.Modes}, Data: s.Data.Data()}
}

// readInput reads path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}

	return data, nil
}

// decodeState decodes a single state document.
func decodeState(data []byte) (stateDoc, error) {
	var doc stateDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return stateDoc{}, fmt.Errorf("parsing state file: %w", err)
	}

	return doc, nil
}

// decodeSteps decodes a list of state documents into monitor steps.
// A missing step index defaults to the position in the list.
func decodeSteps(data []byte) ([]monitor.Step, error) {
	var docs []stateDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parsing states file: %w", err)
	}
	steps := make([]monitor.Step, len(docs))
	for i, d := range docs {
		a, err := d.array()
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
		idx := i
		if d.Step != nil {
			idx = *d.Step
		}
		steps[i] = monitor.Step{Index: idx, Time: d.Time, State: a}
	}

	return steps, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
