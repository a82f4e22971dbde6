package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Node is one vertex of a parsed expression tree. The concrete variants are
// Literal, Variable, Unary, Binary and Call.
type Node interface {
	fmt.Stringer
	eval(env *Env) (value, error)
}

// Literal is a numeric constant (including folded pi and e).
type Literal struct {
	Value float64
}

// Variable is a name resolved by a Scope to a binding index in Env.Vars.
type Variable struct {
	Name  string
	Index int
}

// Unary is a prefix sign: Op is '+' or '-'.
type Unary struct {
	Op byte
	X  Node
}

// Binary is an arithmetic operator: Op is one of + - * / **.
type Binary struct {
	Op   string
	L, R Node
}

// Call is a whitelisted function applied elementwise to its arguments.
type Call struct {
	Name string
	Args []Node
	fn   function
}

// value is an intermediate result: a scalar when vec is nil, otherwise a
// slice of Env.Size elements owned by the evaluator.
type value struct {
	vec    []float64
	scalar float64
}

// at returns element i, broadcasting scalars.
func (v value) at(i int) float64 {
	if v.vec == nil {
		return v.scalar
	}

	return v.vec[i]
}

// map1 applies f elementwise, allocating a fresh result.
func map1(x value, size int, f func(float64) float64) value {
	if x.vec == nil {
		return value{scalar: f(x.scalar)}
	}
	out := make([]float64, size)
	for i, v := range x.vec {
		out[i] = f(v)
	}

	return value{vec: out}
}

// map2 applies f elementwise with scalar broadcasting, allocating a fresh result.
func map2(a, b value, size int, f func(x, y float64) float64) value {
	if a.vec == nil && b.vec == nil {
		return value{scalar: f(a.scalar, b.scalar)}
	}
	out := make([]float64, size)
	for i := range out {
		out[i] = f(a.at(i), b.at(i))
	}

	return value{vec: out}
}

func (n *Literal) eval(*Env) (value, error) {
	return value{scalar: n.Value}, nil
}

func (n *Literal) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Variable) eval(env *Env) (value, error) {
	if n.Index < 0 || n.Index >= len(env.Vars) || env.Vars[n.Index] == nil {
		return value{}, fmt.Errorf("%w: %s", ErrUnbound, n.Name)
	}
	vec := env.Vars[n.Index]
	if len(vec) != env.Size {
		return value{}, fmt.Errorf("%w: %s has %d elements, want %d", ErrEvaluation, n.Name, len(vec), env.Size)
	}

	return value{vec: vec}, nil
}

func (n *Variable) String() string {
	return n.Name
}

func (n *Unary) eval(env *Env) (value, error) {
	x, err := n.X.eval(env)
	if err != nil {
		return value{}, err
	}
	if n.Op == '+' {
		return x, nil
	}

	return map1(x, env.Size, func(v float64) float64 { return -v }), nil
}

func (n *Unary) String() string {
	return "(" + string(n.Op) + n.X.String() + ")"
}

// binaryOps maps operator spelling to its IEEE kernel.
var binaryOps = map[string]func(x, y float64) float64{
	"+":  func(x, y float64) float64 { return x + y },
	"-":  func(x, y float64) float64 { return x - y },
	"*":  func(x, y float64) float64 { return x * y },
	"/":  func(x, y float64) float64 { return x / y },
	"**": math.Pow,
}

func (n *Binary) eval(env *Env) (value, error) {
	l, err := n.L.eval(env)
	if err != nil {
		return value{}, err
	}
	r, err := n.R.eval(env)
	if err != nil {
		return value{}, err
	}

	return map2(l, r, env.Size, binaryOps[n.Op]), nil
}

func (n *Binary) String() string {
	return "(" + n.L.String() + " " + n.Op + " " + n.R.String() + ")"
}

func (n *Call) eval(env *Env) (value, error) {
	args := make([]value, len(n.Args))
	for i, a := range n.Args {
		v, err := a.eval(env)
		if err != nil {
			return value{}, err
		}
		args[i] = v
	}
	if n.fn.arity == 1 {
		return map1(args[0], env.Size, n.fn.f1), nil
	}

	return map2(args[0], args[1], env.Size, n.fn.f2), nil
}

func (n *Call) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}

	return n.Name + "(" + strings.Join(parts, ", ") + ")"
}
