// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Construction returns ErrShape, ErrSyntax or ErrDelimiter; ApplyPre and
// ApplyPost return ErrShape or ErrEvaluation. Match them with errors.Is.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrShape indicates an expression count incompatible with the declared
	// variable count, or a sample whose slot count does not match the post list.
	ErrShape = errors.New("transform: shape mismatch")

	// ErrSyntax indicates an expression that fails to parse, or a pre list
	// made only of no-ops.
	ErrSyntax = errors.New("transform: syntax error")

	// ErrEvaluation indicates a runtime failure: missing variable data,
	// non-finite results under the finite policy, or a nil input.
	ErrEvaluation = errors.New("transform: evaluation error")

	// ErrDelimiter indicates a delimiter that is not exactly one character.
	ErrDelimiter = errors.New("transform: delimiter must be a single character")
)

// Operation name constants for unified error wrapping.
const (
	opSplit     = "Split"
	opValidate  = "Validate"
	opApplyPre  = "ApplyPre"
	opApplyPost = "ApplyPost"
)

// transformErrorf wraps an underlying error with the given operation tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
