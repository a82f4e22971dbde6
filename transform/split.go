// SPDX-License-Identifier: MIT

package transform

import (
	"strings"
	"unicode/utf8"
)

// Split turns a delimited expression string into an ExpressionList.
//
// Empty segments are kept as explicit no-ops, so the result always has
// strings.Count(raw, delim)+1 entries: "a;b;c" and "2.34*(x0+1.5);;" both
// yield three. Segments are returned verbatim; whitespace handling and
// syntax checks belong to Validate.
//
// Errors:
//   - ErrDelimiter if delim is not exactly one character.
//
// Complexity: O(len(raw)).
func Split(raw, delim string) ([]string, error) {
	if utf8.RuneCountInString(delim) != 1 {
		return nil, transformErrorf(opSplit, ErrDelimiter)
	}

	return strings.Split(raw, delim), nil
}
