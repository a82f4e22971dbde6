// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/montransform/expr"
	"github.com/katalvlaran/montransform/ndarray"
)

// Sample is one recorded (time, data) pair; Data has shape [slot, node, mode].
type Sample struct {
	Time float64
	Data *ndarray.Array
}

// ApplyPre evaluates the pre list against a raw state [var, node, mode]
// and returns a new array [Len(), node, mode]. Slot i holds pre[i]
// evaluated elementwise with x<k> bound to state variable k; a no-op slot
// copies state variable i.
//
// The input is never written to.
//
// Errors:
//   - ErrEvaluation for a nil state, a reference to a variable the state
//     does not carry, or a non-finite result under the finite policy.
//   - ErrShape when StateVariables() is declared and differs from state.Vars().
//
// Complexity: O(Len() · nodes·modes · expression size).
func (t *Transforms) ApplyPre(state *ndarray.Array) (*ndarray.Array, error) {
	if err := ndarray.ValidateNotNil(state); err != nil {
		return nil, transformErrorf(opApplyPre, fmt.Errorf("%w: %w", ErrEvaluation, err))
	}
	if t.stateVars > 0 && state.Vars() != t.stateVars {
		return nil, transformErrorf(opApplyPre,
			fmt.Errorf("%w: state has %d variables, want %d", ErrShape, state.Vars(), t.stateVars))
	}

	sh := state.Shape()
	out, err := ndarray.NewArray(len(t.pre), sh.Nodes, sh.Modes)
	if err != nil {
		return nil, transformErrorf(opApplyPre, fmt.Errorf("%w: %w", ErrEvaluation, err))
	}

	env := expr.Env{Size: sh.SlotLen(), Vars: make([][]float64, sh.Vars)}
	for k := range env.Vars {
		env.Vars[k], _ = state.SlotView(k)
	}

	for i, s := range t.pre {
		var vals []float64
		if s.noop() {
			if i >= sh.Vars {
				return nil, transformErrorf(opApplyPre,
					fmt.Errorf("%w: slot %d is a pass-through but state has %d variables", ErrEvaluation, i, sh.Vars))
			}
			vals = env.Vars[i]
		} else if vals, err = t.eval(i, s, env); err != nil {
			return nil, transformErrorf(opApplyPre, err)
		}
		if err = out.SetSlot(i, vals); err != nil {
			return nil, transformErrorf(opApplyPre, fmt.Errorf("%w: %w", ErrEvaluation, err))
		}
	}

	return out, nil
}

// ApplyPost evaluates the post list against a recorded sample and returns
// a new sample of the same shape and time. Slot i holds post[i] with mon
// bound to slot i of s.Data; a no-op slot is copied unchanged. A single
// post expression applies to every slot independently.
//
// Errors:
//   - ErrShape when the slot count differs from a non-broadcast post list.
//   - ErrEvaluation for nil data or a non-finite result under the finite policy.
//
// Complexity: O(slots · nodes·modes · expression size).
func (t *Transforms) ApplyPost(s Sample) (Sample, error) {
	if err := ndarray.ValidateNotNil(s.Data); err != nil {
		return Sample{}, transformErrorf(opApplyPost, fmt.Errorf("%w: %w", ErrEvaluation, err))
	}
	sh := s.Data.Shape()
	if !t.postBroadcast && sh.Vars != len(t.post) {
		return Sample{}, transformErrorf(opApplyPost,
			fmt.Errorf("%w: sample has %d slots, post list has %d expressions", ErrShape, sh.Vars, len(t.post)))
	}

	out := s.Data.Clone()
	env := expr.Env{Size: sh.SlotLen(), Vars: make([][]float64, 1)}

	for i := 0; i < sh.Vars; i++ {
		p := t.postFor(i)
		if p.noop() {
			continue
		}
		env.Vars[0], _ = s.Data.SlotView(i)
		vals, err := t.eval(i, p, env)
		if err != nil {
			return Sample{}, transformErrorf(opApplyPost, err)
		}
		if err = out.SetSlot(i, vals); err != nil {
			return Sample{}, transformErrorf(opApplyPost, fmt.Errorf("%w: %w", ErrEvaluation, err))
		}
	}

	return Sample{Time: s.Time, Data: out}, nil
}

func (t *Transforms) postFor(i int) slot {
	if t.postBroadcast {
		return t.post[0]
	}

	return t.post[i]
}

// eval runs one slot program and applies the finite policy.
func (t *Transforms) eval(i int, s slot, env expr.Env) ([]float64, error) {
	vals, err := s.prog.Eval(env)
	if err != nil {
		return nil, fmt.Errorf("%w: slot %d %q: %w", ErrEvaluation, i, s.src, err)
	}
	if t.validateFin {
		for j, x := range vals {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("%w: slot %d %q: non-finite value %g at element %d", ErrEvaluation, i, s.src, x, j)
			}
		}
	}

	return vals, nil
}
