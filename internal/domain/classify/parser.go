package classify

import (
	"fmt"
)

// parser is a recursive-descent parser over the token stream. Precedence,
// lowest first: ||, &&, == !=, < <= > >=, + -, * /, unary + -.
type parser struct {
	tokens []token
	pos    int
	depth  int
	limits Limits
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.next()
	if t.kind != kind {
		return t, unexpected(t, kind.String())
	}
	return t, nil
}

// enter guards every construct that recurses: parentheses, calls and unary
// operators.
func (p *parser) enter(t token) error {
	p.depth++
	if p.depth > p.limits.MaxDepth {
		return &SyntaxError{
			Pos: t.pos,
			Msg: fmt.Sprintf("nesting deeper than %d", p.limits.MaxDepth),
			Err: ErrTooDeep,
		}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) parse() (booleanExpr, error) {
	if p.peek().kind == tokEOF {
		return nil, &SyntaxError{Pos: 0, Msg: "empty condition", Err: ErrEmptyCondition}
	}

	root, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, unexpected(t, "an operator or end of condition")
	}

	b, ok := root.(booleanExpr)
	if !ok {
		return nil, &SyntaxError{Pos: 0, Msg: "condition yields a number, not true/false", Err: ErrNotBoolean}
	}
	return b, nil
}

func (p *parser) parseOr() (expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		op := p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		l, r, err := booleanOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		left = logical{and: false, left: l, right: r}
	}
	return left, nil
}

func (p *parser) parseAnd() (expr, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		op := p.next()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		l, r, err := booleanOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		left = logical{and: true, left: l, right: r}
	}
	return left, nil
}

func (p *parser) parseEquality() (expr, error) {
	left, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for k := p.peek().kind; k == tokEQ || k == tokNE; k = p.peek().kind {
		op := p.next()
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		if left.kind() != right.kind() {
			return nil, syntaxErrorf(op.pos, "%s compares a %s with a %s", op.kind, left.kind(), right.kind())
		}
		if left.kind() == boolKind {
			left = compareBools{equal: op.kind == tokEQ, left: left.(booleanExpr), right: right.(booleanExpr)}
		} else {
			left = compareNumbers{op: op.kind, left: left.(numericExpr), right: right.(numericExpr)}
		}
	}
	return left, nil
}

func (p *parser) parseRelational() (expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for k := p.peek().kind; k == tokLT || k == tokLE || k == tokGT || k == tokGE; k = p.peek().kind {
		op := p.next()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		left = compareNumbers{op: op.kind, left: l, right: r}
	}
	return left, nil
}

func (p *parser) parseAdditive() (expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for k := p.peek().kind; k == tokPlus || k == tokMinus; k = p.peek().kind {
		op := p.next()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		left = arithmetic{op: op.kind, left: l, right: r}
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for k := p.peek().kind; k == tokStar || k == tokSlash; k = p.peek().kind {
		op := p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		l, r, err := numericOperands(op, left, right)
		if err != nil {
			return nil, err
		}
		left = arithmetic{op: op.kind, left: l, right: r}
	}
	return left, nil
}

func (p *parser) parseUnary() (expr, error) {
	t := p.peek()
	if t.kind != tokPlus && t.kind != tokMinus {
		return p.parsePrimary()
	}

	p.next()
	if err := p.enter(t); err != nil {
		return nil, err
	}
	defer p.leave()

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	n, ok := operand.(numericExpr)
	if !ok {
		return nil, syntaxErrorf(t.pos, "unary %s needs a number, got a boolean", t.kind)
	}
	if t.kind == tokPlus {
		return n, nil
	}
	return negate{operand: n}, nil
}

func (p *parser) parsePrimary() (expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		return literal{value: t.num}, nil

	case tokIdent:
		if p.peek().kind == tokLParen {
			return p.parseCall(t)
		}
		if len(t.text) == 1 && t.text[0] >= 'A' && t.text[0] <= 'Z' {
			return letterRef{index: int(t.text[0] - 'A')}, nil
		}
		return unknownRef{name: t.text}, nil

	case tokLParen:
		if err := p.enter(t); err != nil {
			return nil, err
		}
		defer p.leave()

		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return inner, nil
	}

	return nil, unexpected(t, "a letter, number, function call or '('")
}

func (p *parser) parseCall(name token) (expr, error) {
	fn, ok := aggregates[name.text]
	if !ok {
		return nil, syntaxErrorf(name.pos, "unknown function %q (supported: min, max, sum)", name.text)
	}

	open := p.next() // '('
	if err := p.enter(open); err != nil {
		return nil, err
	}
	defer p.leave()

	if p.peek().kind == tokRParen {
		return nil, syntaxErrorf(open.pos, "%s() needs at least one argument", name.text)
	}

	var args []numericExpr
	for {
		arg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		n, ok := arg.(numericExpr)
		if !ok {
			return nil, syntaxErrorf(name.pos, "%s() arguments must be numbers", name.text)
		}
		args = append(args, n)
		if len(args) > p.limits.MaxArgs {
			return nil, &SyntaxError{
				Pos: name.pos,
				Msg: fmt.Sprintf("%s() takes at most %d arguments", name.text, p.limits.MaxArgs),
				Err: ErrTooManyArguments,
			}
		}

		sep := p.next()
		if sep.kind == tokRParen {
			break
		}
		if sep.kind != tokComma {
			return nil, unexpected(sep, "',' or ')'")
		}
	}

	return call{name: name.text, fn: fn, args: args}, nil
}

func numericOperands(op token, left, right expr) (numericExpr, numericExpr, error) {
	l, lok := left.(numericExpr)
	r, rok := right.(numericExpr)
	if !lok || !rok {
		return nil, nil, syntaxErrorf(op.pos, "%s needs numbers on both sides", op.kind)
	}
	return l, r, nil
}

func booleanOperands(op token, left, right expr) (booleanExpr, booleanExpr, error) {
	l, lok := left.(booleanExpr)
	r, rok := right.(booleanExpr)
	if !lok || !rok {
		return nil, nil, syntaxErrorf(op.pos, "%s needs comparisons on both sides", op.kind)
	}
	return l, r, nil
}

func unexpected(t token, want string) *SyntaxError {
	if t.kind == tokEOF {
		return syntaxErrorf(t.pos, "unexpected end of condition, expected %s", want)
	}
	return syntaxErrorf(t.pos, "unexpected %q, expected %s", t.text, want)
}
