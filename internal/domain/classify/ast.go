package classify

import (
	"math"
)

type valueKind int

const (
	numberKind valueKind = iota
	boolKind
)

func (k valueKind) String() string {
	if k == boolKind {
		return "boolean"
	}
	return "number"
}

// expr is a node of a compiled condition. Every node is statically either
// numeric or boolean; the parser rejects mixing them.
type expr interface {
	kind() valueKind
}

type numericExpr interface {
	expr
	number(counts *LetterCounts) (float64, error)
}

type booleanExpr interface {
	expr
	truth(counts *LetterCounts) (bool, error)
}

type literal struct {
	value float64
}

func (literal) kind() valueKind { return numberKind }

func (n literal) number(*LetterCounts) (float64, error) {
	return n.value, nil
}

// letterRef reads one of the 26 counters.
type letterRef struct {
	index int
}

func (letterRef) kind() valueKind { return numberKind }

func (n letterRef) number(counts *LetterCounts) (float64, error) {
	return float64(counts[n.index]), nil
}

// unknownRef is any identifier that is not a letter A-Z. It reads as 0.
type unknownRef struct {
	name string
}

func (unknownRef) kind() valueKind { return numberKind }

func (unknownRef) number(*LetterCounts) (float64, error) {
	return 0, nil
}

type negate struct {
	operand numericExpr
}

func (negate) kind() valueKind { return numberKind }

func (n negate) number(counts *LetterCounts) (float64, error) {
	v, err := n.operand.number(counts)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type arithmetic struct {
	op          tokenKind
	left, right numericExpr
}

func (arithmetic) kind() valueKind { return numberKind }

func (n arithmetic) number(counts *LetterCounts) (float64, error) {
	l, err := n.left.number(counts)
	if err != nil {
		return 0, err
	}
	r, err := n.right.number(counts)
	if err != nil {
		return 0, err
	}

	var v float64
	switch n.op {
	case tokPlus:
		v = l + r
	case tokMinus:
		v = l - r
	case tokStar:
		v = l * r
	case tokSlash:
		if r == 0 {
			return 0, ErrDivisionByZero
		}
		v = l / r
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNonFinite
	}
	return v, nil
}

type aggregate func(values []float64) float64

var aggregates = map[string]aggregate{
	"min": func(values []float64) float64 {
		m := values[0]
		for _, v := range values[1:] {
			m = math.Min(m, v)
		}
		return m
	},
	"max": func(values []float64) float64 {
		m := values[0]
		for _, v := range values[1:] {
			m = math.Max(m, v)
		}
		return m
	},
	"sum": func(values []float64) float64 {
		s := 0.0
		for _, v := range values {
			s += v
		}
		return s
	},
}

// call applies an aggregate to one or more numeric arguments.
type call struct {
	name string
	fn   aggregate
	args []numericExpr
}

func (call) kind() valueKind { return numberKind }

func (n call) number(counts *LetterCounts) (float64, error) {
	values := make([]float64, len(n.args))
	for i, arg := range n.args {
		v, err := arg.number(counts)
		if err != nil {
			return 0, err
		}
		values[i] = v
	}

	v := n.fn(values)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNonFinite
	}
	return v, nil
}

type compareNumbers struct {
	op          tokenKind
	left, right numericExpr
}

func (compareNumbers) kind() valueKind { return boolKind }

func (n compareNumbers) truth(counts *LetterCounts) (bool, error) {
	l, err := n.left.number(counts)
	if err != nil {
		return false, err
	}
	r, err := n.right.number(counts)
	if err != nil {
		return false, err
	}

	switch n.op {
	case tokLT:
		return l < r, nil
	case tokLE:
		return l <= r, nil
	case tokGT:
		return l > r, nil
	case tokGE:
		return l >= r, nil
	case tokEQ:
		return l == r, nil
	default:
		return l != r, nil
	}
}

// compareBools handles == and != between two boolean operands.
type compareBools struct {
	equal       bool
	left, right booleanExpr
}

func (compareBools) kind() valueKind { return boolKind }

func (n compareBools) truth(counts *LetterCounts) (bool, error) {
	l, err := n.left.truth(counts)
	if err != nil {
		return false, err
	}
	r, err := n.right.truth(counts)
	if err != nil {
		return false, err
	}
	return (l == r) == n.equal, nil
}

// logical implements && and || with short-circuiting.
type logical struct {
	and         bool
	left, right booleanExpr
}

func (logical) kind() valueKind { return boolKind }

func (n logical) truth(counts *LetterCounts) (bool, error) {
	l, err := n.left.truth(counts)
	if err != nil {
		return false, err
	}
	if n.and && !l {
		return false, nil
	}
	if !n.and && l {
		return true, nil
	}
	return n.right.truth(counts)
}
