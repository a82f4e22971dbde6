package expr

import (
	"fmt"
	"sort"
	"strings"
)

// parser is a recursive-descent parser over a token slice.
type parser struct {
	src   string
	toks  []token
	pos   int
	scope Scope
	refs  map[int]struct{}
}

// Parse compiles src into a Program, resolving every name against scope,
// the constants and the function whitelist. A nil scope binds no variables.
//
// Errors are *SyntaxError values matching ErrSyntax (and ErrUnknownName or
// ErrArity where relevant). Blank input is a syntax error: callers that
// treat an empty slot as a pass-through must check for it first.
//
// Complexity: O(len(src)).
func Parse(src string, scope Scope) (*Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, &SyntaxError{Src: src, Pos: 0, Msg: "empty expression", Kind: ErrSyntax}
	}
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		scope = MapScope(nil)
	}
	p := &parser{src: src, toks: toks, scope: scope, refs: map[int]struct{}{}}

	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokEOF {
		return nil, p.errorf(tok, ErrSyntax, "unexpected %q", tok.text)
	}

	refs := make([]int, 0, len(p.refs))
	for i := range p.refs {
		refs = append(refs, i)
	}
	sort.Ints(refs)

	return &Program{src: src, root: root, refs: refs}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level fixtures with known-good sources.
func MustParse(src string, scope Scope) *Program {
	p, err := Parse(src, scope)
	if err != nil {
		panic(err)
	}

	return p
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) errorf(tok token, kind error, format string, args ...any) error {
	return &SyntaxError{Src: p.src, Pos: tok.pos, Msg: fmt.Sprintf(format, args...), Kind: kind}
}

// expr := term (('+' | '-') term)*
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokPlus && tok.kind != tokMinus {
			return left, nil
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: tok.text, L: left, R: right}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tokStar && tok.kind != tokSlash {
			return left, nil
		}
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: tok.text, L: left, R: right}
	}
}

// unary := ('+' | '-') unary | power
func (p *parser) parseUnary() (Node, error) {
	tok := p.peek()
	if tok.kind == tokPlus || tok.kind == tokMinus {
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		return &Unary{Op: tok.text[0], X: x}, nil
	}

	return p.parsePower()
}

// power := primary ('**' unary)?
// The exponent is parsed as unary so 2**-1 works and a**b**c nests right.
func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPow {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	return &Binary{Op: "**", L: base, R: exp}, nil
}

// primary := NUMBER | NAME | NAME '(' args ')' | '(' expr ')'
func (p *parser) parsePrimary() (Node, error) {
	tok := p.next()
	switch tok.kind {
	case tokNumber:
		return &Literal{Value: tok.num}, nil

	case tokLParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokRParen {
			return nil, p.errorf(closing, ErrSyntax, "expected ')'")
		}

		return inner, nil

	case tokName:
		if p.peek().kind == tokLParen {
			return p.parseCall(tok)
		}
		if idx, ok := p.scope.Lookup(tok.text); ok {
			p.refs[idx] = struct{}{}

			return &Variable{Name: tok.text, Index: idx}, nil
		}
		if c, ok := constants[tok.text]; ok {
			return &Literal{Value: c}, nil
		}

		return nil, p.errorf(tok, ErrUnknownName, "%q", tok.text)

	case tokEOF:
		return nil, p.errorf(tok, ErrSyntax, "unexpected end of expression")

	default:
		return nil, p.errorf(tok, ErrSyntax, "unexpected %q", tok.text)
	}
}

// parseCall parses the argument list after a function name.
func (p *parser) parseCall(name token) (Node, error) {
	fn, ok := builtins[name.text]
	if !ok {
		return nil, p.errorf(name, ErrUnknownName, "function %q", name.text)
	}
	p.next() // '('

	var args []Node
	if p.peek().kind != tokRParen {
		for {
			a, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
	}
	if closing := p.next(); closing.kind != tokRParen {
		return nil, p.errorf(closing, ErrSyntax, "expected ')' after arguments to %s", name.text)
	}
	if len(args) != fn.arity {
		return nil, p.errorf(name, ErrArity, "%s takes %d, got %d", name.text, fn.arity, len(args))
	}

	return &Call{Name: name.text, Args: args, fn: fn}, nil
}
