package expr

import "fmt"

// Env binds data to the variable indices a Program was resolved against.
// Vars[i] is the flat slice for binding index i (nil when unavailable);
// every bound slice must hold exactly Size elements. Env is built per
// evaluation and the evaluator never writes into Vars.
type Env struct {
	Size int
	Vars [][]float64
}

// Program is a parsed, name-resolved expression ready for repeated
// evaluation. It is immutable and safe for concurrent use.
type Program struct {
	src  string
	root Node
	refs []int
}

// Source returns the text the program was parsed from.
func (p *Program) Source() string { return p.src }

// Root returns the AST root.
func (p *Program) Root() Node { return p.root }

// Refs returns the sorted, de-duplicated binding indices the program reads.
func (p *Program) Refs() []int {
	out := make([]int, len(p.refs))
	copy(out, p.refs)

	return out
}

// String renders the fully parenthesized canonical form.
func (p *Program) String() string { return p.root.String() }

// Eval evaluates the program elementwise and returns a fresh slice of
// env.Size elements. Constant programs are broadcast to env.Size.
// Errors match ErrEvaluation (ErrUnbound for a missing variable).
// Complexity: O(nodes · Size).
func (p *Program) Eval(env Env) ([]float64, error) {
	if env.Size <= 0 {
		return nil, fmt.Errorf("%w: non-positive size %d", ErrEvaluation, env.Size)
	}
	v, err := p.root.eval(&env)
	if err != nil {
		return nil, err
	}
	out := make([]float64, env.Size)
	if v.vec == nil {
		for i := range out {
			out[i] = v.scalar
		}

		return out, nil
	}
	copy(out, v.vec)

	return out, nil
}
