// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/montransform/expr"
)

// slot is one validated expression. prog == nil marks a no-op (pass-through).
type slot struct {
	src  string
	prog *expr.Program
}

func (s slot) noop() bool { return s.prog == nil }

// Transforms is a validated TransformSet: the pre and post lists of one
// monitor together with their parsed programs. It is immutable after
// construction.
type Transforms struct {
	pre           []slot
	post          []slot
	postBroadcast bool // a single post expression applies to every slot
	stateVars     int  // 0 ⇒ not declared
	validateFin   bool
}

// New is the construction entry point: it splits pre and post with the
// configured delimiter (default ";") and validates them.
//
// The declared variable count is taken from WithVariableCount, or else
// max(len(pre), len(post)) so either list may be broadcast to the other.
//
// Errors: ErrDelimiter, ErrShape, ErrSyntax.
func New(pre, post string, opts ...Option) (*Transforms, error) {
	o := gatherOptions(opts...)

	preList, err := Split(pre, o.delimiter)
	if err != nil {
		return nil, err
	}
	postList, err := Split(post, o.delimiter)
	if err != nil {
		return nil, err
	}

	n := o.varCount
	if n == 0 {
		n = max(len(preList), len(postList))
	}

	return validate(preList, postList, n, o)
}

// Validate checks pre and post against nVars declared variables and parses
// every expression, returning a set the evaluator can use without
// re-parsing.
//
// Policy, in order:
//  1. nVars >= 1, else ErrShape.
//  2. len(pre) == nVars, or len(pre) == 1 (broadcast to nVars), else ErrShape.
//  3. len(post) == nVars, or len(post) == 1 (broadcast per slot), else ErrShape.
//  4. at least one pre expression is not a no-op, else ErrSyntax.
//  5. with a declared state variable count n, no pre slot i >= n is a
//     no-op (it would pass through a variable the state lacks), else ErrShape.
//  6. every non-empty expression parses with known names, else ErrSyntax.
//
// Entries that are empty or whitespace-only are no-ops.
func Validate(pre, post []string, nVars int, opts ...Option) (*Transforms, error) {
	return validate(pre, post, nVars, gatherOptions(opts...))
}

func validate(pre, post []string, nVars int, o Options) (*Transforms, error) {
	log := o.logger.With("op", opValidate)

	// Stage 1: shape policy.
	if nVars < 1 {
		return nil, transformErrorf(opValidate, fmt.Errorf("%w: declared variable count %d", ErrShape, nVars))
	}
	pre, err := broadcast("pre", pre, nVars)
	if err != nil {
		log.Debug("rejected transform", "error", err)
		return nil, transformErrorf(opValidate, err)
	}
	postBroadcast := len(post) == 1
	if !postBroadcast && len(post) != nVars {
		err = fmt.Errorf("%w: %d post expressions for %d variables", ErrShape, len(post), nVars)
		log.Debug("rejected transform", "error", err)
		return nil, transformErrorf(opValidate, err)
	}

	// Stage 2: a transform set must transform something.
	if allNoop(pre) {
		err = fmt.Errorf("%w: every pre expression is empty", ErrSyntax)
		log.Debug("rejected transform", "error", err)
		return nil, transformErrorf(opValidate, err)
	}

	// A pass-through slot copies state variable i, which must exist when
	// the state variable count is declared.
	if o.stateVars > 0 {
		for i := o.stateVars; i < len(pre); i++ {
			if strings.TrimSpace(pre[i]) == "" {
				err = fmt.Errorf("%w: pre[%d] is a pass-through but the state has %d variables", ErrShape, i, o.stateVars)
				log.Debug("rejected transform", "error", err)
				return nil, transformErrorf(opValidate, err)
			}
		}
	}

	// Stage 3: parse with names resolved per stage.
	preScope := expr.IndexedScope{Prefix: VariablePrefix, Limit: o.stateVars, Aliases: aliases(o.names)}
	postScope := expr.NewScope(MonitorName)

	t := &Transforms{postBroadcast: postBroadcast, stateVars: o.stateVars, validateFin: o.validateFinite}
	if t.pre, err = compile("pre", pre, preScope); err != nil {
		log.Debug("rejected transform", "error", err)
		return nil, transformErrorf(opValidate, err)
	}
	if t.post, err = compile("post", post, postScope); err != nil {
		log.Debug("rejected transform", "error", err)
		return nil, transformErrorf(opValidate, err)
	}

	log.Debug("transform validated", "pre", len(t.pre), "post", len(t.post), "post_broadcast", postBroadcast)

	return t, nil
}

// broadcast returns list unchanged when it has n entries, or the single
// entry repeated n times.
func broadcast(stage string, list []string, n int) ([]string, error) {
	switch {
	case len(list) == n:
		return list, nil
	case len(list) == 1:
		out := make([]string, n)
		for i := range out {
			out[i] = list[0]
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d %s expressions for %d variables", ErrShape, len(list), stage, n)
	}
}

func allNoop(list []string) bool {
	for _, s := range list {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}

	return true
}

func aliases(names []string) map[string]int {
	if len(names) == 0 {
		return nil
	}
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}

	return m
}

// compile parses every non-empty entry of list against scope.
func compile(stage string, list []string, scope expr.Scope) ([]slot, error) {
	out := make([]slot, len(list))
	for i, src := range list {
		out[i].src = src
		if strings.TrimSpace(src) == "" {
			continue
		}
		p, err := expr.Parse(src, scope)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d]: %w", ErrSyntax, stage, i, err)
		}
		out[i].prog = p
	}

	return out, nil
}

// Len returns the declared variable count: len(pre) after broadcasting.
func (t *Transforms) Len() int { return len(t.pre) }

// Pre returns the pre expression sources after broadcasting.
func (t *Transforms) Pre() []string { return sources(t.pre) }

// Post returns the post expression sources as given (one entry when broadcast).
func (t *Transforms) Post() []string { return sources(t.post) }

// PostBroadcast reports whether a single post expression is applied to every slot.
func (t *Transforms) PostBroadcast() bool { return t.postBroadcast }

// HasPost reports whether at least one post expression does real work.
func (t *Transforms) HasPost() bool {
	for _, s := range t.post {
		if !s.noop() {
			return true
		}
	}

	return false
}

// StateVariables returns the declared raw-state variable count, 0 if unknown.
func (t *Transforms) StateVariables() int { return t.stateVars }

func sources(slots []slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.src
	}

	return out
}
