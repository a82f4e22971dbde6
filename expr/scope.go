package expr

import (
	"strconv"
	"strings"
)

// Scope resolves a variable name to its binding index in Env.Vars.
// Resolution happens once, at parse time, so unknown names never reach
// evaluation.
type Scope interface {
	Lookup(name string) (index int, ok bool)
}

// MapScope is a fixed name→index table.
type MapScope map[string]int

// NewScope binds names[i] to index i.
func NewScope(names ...string) MapScope {
	s := make(MapScope, len(names))
	for i, n := range names {
		s[n] = i
	}

	return s
}

// Lookup implements Scope.
func (s MapScope) Lookup(name string) (int, bool) {
	i, ok := s[name]

	return i, ok
}

// IndexedScope resolves Prefix followed by a decimal index (x0, x1, …) to
// that index, plus optional aliases such as model variable names.
//
// Limit bounds the accepted index: x<k> resolves only when k < Limit.
// Limit <= 0 accepts any index; the caller then checks availability at
// evaluation time (ErrUnbound).
type IndexedScope struct {
	Prefix  string
	Limit   int
	Aliases map[string]int
}

// Lookup implements Scope.
func (s IndexedScope) Lookup(name string) (int, bool) {
	if i, ok := s.Aliases[name]; ok {
		return i, true
	}
	digits, ok := strings.CutPrefix(name, s.Prefix)
	if !ok || digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return 0, false
		}
	}
	k, err := strconv.Atoi(digits)
	if err != nil || (s.Limit > 0 && k >= s.Limit) {
		return 0, false
	}

	return k, true
}
