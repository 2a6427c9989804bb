package classify

import (
	"fmt"
	"strings"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
)

// Limits bounds the cost of compiling and evaluating a condition taken from
// untrusted storage.
type Limits struct {
	// MaxLength is the maximum condition size in bytes.
	MaxLength int
	// MaxDepth is the maximum nesting of parentheses, calls and unary operators.
	MaxDepth int
	// MaxArgs is the maximum number of arguments to min, max or sum.
	MaxArgs int
}

// DefaultLimits returns the limits used by Compile.
func DefaultLimits() Limits {
	return Limits{
		MaxLength: domain.MaxConditionLength,
		MaxDepth:  64,
		MaxArgs:   64,
	}
}

// Condition is a compiled rule condition. It is immutable and safe for
// concurrent use.
type Condition struct {
	source string
	root   booleanExpr
}

// Compile parses a condition with DefaultLimits.
func Compile(condition string) (*Condition, error) {
	return CompileWithLimits(condition, DefaultLimits())
}

// CompileWithLimits parses a condition, rejecting anything outside the
// grammar or the given limits. Errors are *SyntaxError or wrap one of the
// package sentinels.
func CompileWithLimits(condition string, limits Limits) (*Condition, error) {
	if strings.TrimSpace(condition) == "" {
		return nil, ErrEmptyCondition
	}
	if limits.MaxLength > 0 && len(condition) > limits.MaxLength {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrConditionTooLong, len(condition), limits.MaxLength)
	}

	tokens, err := tokenize(condition)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, limits: limits}
	root, err := p.parse()
	if err != nil {
		return nil, err
	}

	return &Condition{source: condition, root: root}, nil
}

// String returns the condition text as it was compiled.
func (c *Condition) String() string {
	return c.source
}

// Eval evaluates the condition against counts. A non-nil error means the
// condition could not be decided; the boolean is then false.
func (c *Condition) Eval(counts LetterCounts) (bool, error) {
	ok, err := c.root.truth(&counts)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Evaluate compiles and evaluates condition in one step. Any compile or
// runtime error yields false.
func Evaluate(condition string, counts LetterCounts) bool {
	ok, _ := evaluate(condition, counts, DefaultLimits())
	return ok
}

func evaluate(condition string, counts LetterCounts, limits Limits) (bool, error) {
	c, err := CompileWithLimits(condition, limits)
	if err != nil {
		return false, err
	}
	return c.Eval(counts)
}
