// SPDX-License-Identifier: MIT

// Package transform: functional configuration for transform construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values: programmer error),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Declared variable count vs. state variables:
//   - the declared count (WithVariableCount) is the number of monitored
//     slots, i.e. len(pre) after broadcasting;
//   - the state variable count (WithStateVariables / WithVariableNames) is
//     the leading axis of the raw simulator state that x0..xN index into.
//     When it is unknown (zero), x<k> is accepted at construction and
//     checked against the actual state on every ApplyPre.
package transform

import (
	"log/slog"

	"github.com/katalvlaran/montransform/internal/logging"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter separates expressions in a raw list.
	DefaultDelimiter = ";"

	// DefaultValidateFinite rejects NaN/±Inf produced by an expression
	// (division by zero, log of a negative, overflow) with ErrEvaluation.
	DefaultValidateFinite = true

	// VariablePrefix is the prefix of indexed pre-stage names (x0, x1, …).
	VariablePrefix = "x"

	// MonitorName is the post-stage name bound to the recorded slot.
	MonitorName = "mon"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVariableCountInvalid = "transform: WithVariableCount: n must be >= 1"
	panicStateVarsInvalid     = "transform: WithStateVariables: n must be >= 1"
	panicVariableNamesInvalid = "transform: WithVariableNames: names must be non-empty and unique"
)

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	delimiter      string       // DefaultDelimiter
	varCount       int          // 0 ⇒ derive from list lengths
	stateVars      int          // 0 ⇒ unknown until ApplyPre
	names          []string     // model aliases for x0..xN
	validateFinite bool         // DefaultValidateFinite
	logger         *slog.Logger // nop by default
}

// WithDelimiter sets the expression separator used by New.
// The value is checked by Split (ErrDelimiter) rather than here, since it
// usually comes from user configuration.
func WithDelimiter(d string) Option {
	return func(o *Options) { o.delimiter = d }
}

// WithVariableCount declares the number of monitored slots. Lists must
// have exactly n entries or a single broadcast entry, else ErrShape.
// Panics if n < 1.
func WithVariableCount(n int) Option {
	if n < 1 {
		panic(panicVariableCountInvalid)
	}

	return func(o *Options) { o.varCount = n }
}

// WithStateVariables declares how many variables the raw state carries.
// Pre expressions referencing x<k> with k >= n then fail at construction
// (ErrSyntax), and ApplyPre rejects states with another variable count
// (ErrShape). Panics if n < 1.
func WithStateVariables(n int) Option {
	if n < 1 {
		panic(panicStateVarsInvalid)
	}

	return func(o *Options) { o.stateVars = n }
}

// WithVariableNames binds model variable names to state indices:
// names[i] aliases x<i>. It also sets the state variable count to
// len(names). Panics on an empty list, a blank name or duplicates.
func WithVariableNames(names ...string) Option {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup || n == "" {
			panic(panicVariableNamesInvalid)
		}
		seen[n] = struct{}{}
	}
	if len(names) == 0 {
		panic(panicVariableNamesInvalid)
	}
	cp := append([]string(nil), names...)

	return func(o *Options) {
		o.names = cp
		o.stateVars = len(cp)
	}
}

// WithValidateFinite enables the finite-result policy (default).
func WithValidateFinite() Option {
	return func(o *Options) { o.validateFinite = true }
}

// WithNoValidateFinite lets NaN/±Inf results through with IEEE semantics.
func WithNoValidateFinite() Option {
	return func(o *Options) { o.validateFinite = false }
}

// WithLogger sets the logger used for construction diagnostics.
// A nil logger restores the no-op default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = logging.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		delimiter:      DefaultDelimiter,
		validateFinite: DefaultValidateFinite,
		logger:         logging.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
