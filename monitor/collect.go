// SPDX-License-Identifier: MIT

package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/montransform/ndarray"
	"github.com/katalvlaran/montransform/transform"
)

// Step is one simulator output: the step index, its time and the raw state.
type Step struct {
	Index int
	Time  float64
	State *ndarray.Array
}

// Source yields simulator steps in order. Next returns io.EOF once the
// stream is exhausted.
type Source interface {
	Next(ctx context.Context) (Step, error)
}

// SliceSource replays a fixed list of steps.
type SliceSource struct {
	steps []Step
	pos   int
}

// NewSliceSource returns a Source over steps. The slice is not copied.
func NewSliceSource(steps ...Step) *SliceSource {
	return &SliceSource{steps: steps}
}

// Next implements Source.
func (s *SliceSource) Next(ctx context.Context) (Step, error) {
	if err := ctx.Err(); err != nil {
		return Step{}, err
	}
	if s.pos >= len(s.steps) {
		return Step{}, io.EOF
	}
	st := s.steps[s.pos]
	s.pos++

	return st, nil
}

// Series is the ordered output of one monitor.
type Series struct {
	Name    string
	Samples []transform.Sample
}

// Collect drains src, offering every step to every monitor, and returns one
// Series per monitor in argument order. It stops at the first error, which
// is returned together with the samples gathered so far.
//
// Complexity: O(steps · monitors · per-step transform cost).
func Collect(ctx context.Context, src Source, mons ...Monitor) ([]Series, error) {
	if len(mons) == 0 {
		return nil, ErrNoMonitors
	}
	out := make([]Series, len(mons))
	for i, m := range mons {
		out[i].Name = m.Name()
	}

	for {
		st, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("monitor: source: %w", err)
		}
		for i, m := range mons {
			s, ok, err := m.Record(st.Index, st.Time, st.State)
			if err != nil {
				return out, err
			}
			if ok {
				out[i].Samples = append(out[i].Samples, s)
			}
		}
	}
}
