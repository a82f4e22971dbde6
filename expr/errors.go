// Package expr: sentinel errors and the positional SyntaxError.
package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the root of every parse-time failure.
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownName marks an identifier that is neither a bound variable,
	// a constant nor a whitelisted function. It matches ErrSyntax too.
	ErrUnknownName = fmt.Errorf("%w: unknown name", ErrSyntax)

	// ErrArity marks a function call with the wrong number of arguments.
	// It matches ErrSyntax too.
	ErrArity = fmt.Errorf("%w: wrong number of arguments", ErrSyntax)

	// ErrEvaluation is the root of every evaluation-time failure.
	ErrEvaluation = errors.New("expr: evaluation error")

	// ErrUnbound marks a variable with no data bound at evaluation time.
	// It matches ErrEvaluation too.
	ErrUnbound = fmt.Errorf("%w: unbound variable", ErrEvaluation)
)

// SyntaxError reports where in the source a parse failure happened.
// Kind is one of ErrSyntax, ErrUnknownName or ErrArity.
type SyntaxError struct {
	Src  string // full expression source
	Pos  int    // byte offset of the offending token
	Msg  string // human-readable detail
	Kind error  // sentinel returned by Unwrap
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d in %q", e.Kind, e.Msg, e.Pos, e.Src)
}

// Unwrap exposes Kind so callers can use errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}
