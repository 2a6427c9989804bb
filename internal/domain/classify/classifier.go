package classify

import (
	"fmt"
	"runtime"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the rule count below which evaluation stays on the
// calling goroutine.
const parallelThreshold = 16

// Verdict is the result of classifying one sentence against a rule set.
// FailedRules is nil exactly when AllRulesSatisfied is true.
type Verdict struct {
	Sentence          string       `json:"sentence"`
	AllRulesSatisfied bool         `json:"allRulesSatisfied"`
	FailedRules       []FailedRule `json:"failedRules,omitempty"`

	// Diagnostics lists rules whose condition could not be decided.
	// Every such rule is also in FailedRules.
	Diagnostics []RuleError `json:"-"`
}

// FailedRule identifies a rule that was not satisfied by its condition text.
type FailedRule struct {
	Condition string `json:"condition"`
}

// RuleError records why a rule could not be evaluated.
type RuleError struct {
	Index     int
	RuleID    uuid.UUID
	Condition string
	Err       error
}

// Error implements the error interface.
func (e RuleError) Error() string {
	return fmt.Sprintf("rule %d (%s): %v", e.Index, e.Condition, e.Err)
}

// Unwrap returns the underlying evaluation error.
func (e RuleError) Unwrap() error {
	return e.Err
}

// Service classifies sentences against rule sets.
type Service interface {
	// Classify counts the sentence once and evaluates every rule, preserving
	// rule order in the failed list. It never returns an error: rules that
	// cannot be evaluated fail closed and are listed in Diagnostics.
	Classify(sentence string, rules []domain.Rule) Verdict

	// Validate compiles a condition and reports why it is not acceptable.
	Validate(condition string) error
}

// Option configures the classification service.
type Option func(*classifier)

// WithWorkers bounds the number of goroutines evaluating rules of a single
// Classify call. Values below 1 disable parallel evaluation.
func WithWorkers(n int) Option {
	return func(c *classifier) {
		c.workers = n
	}
}

// WithLimits overrides the compile limits.
func WithLimits(limits Limits) Option {
	return func(c *classifier) {
		c.limits = limits
	}
}

type classifier struct {
	workers int
	limits  Limits
}

// NewService creates a classification service.
func NewService(opts ...Option) Service {
	c := &classifier{
		workers: runtime.GOMAXPROCS(0),
		limits:  DefaultLimits(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefaultService creates a classification service with default options.
func NewDefaultService() Service {
	return NewService()
}

// Classify is a convenience wrapper around the default service.
func Classify(sentence string, rules []domain.Rule) Verdict {
	return defaultService.Classify(sentence, rules)
}

var defaultService = NewDefaultService()

type outcome struct {
	satisfied bool
	err       error
}

func (c *classifier) Classify(sentence string, rules []domain.Rule) Verdict {
	counts := Count(sentence)
	outcomes := make([]outcome, len(rules))

	if c.workers > 1 && len(rules) >= parallelThreshold {
		var g errgroup.Group
		g.SetLimit(c.workers)
		for i := range rules {
			g.Go(func() error {
				outcomes[i] = c.evaluateRule(rules[i].Condition, counts)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range rules {
			outcomes[i] = c.evaluateRule(rules[i].Condition, counts)
		}
	}

	verdict := Verdict{Sentence: sentence}
	for i, o := range outcomes {
		if o.satisfied {
			continue
		}
		verdict.FailedRules = append(verdict.FailedRules, FailedRule{Condition: rules[i].Condition})
		if o.err != nil {
			verdict.Diagnostics = append(verdict.Diagnostics, RuleError{
				Index:     i,
				RuleID:    rules[i].ID,
				Condition: rules[i].Condition,
				Err:       o.err,
			})
		}
	}
	verdict.AllRulesSatisfied = len(verdict.FailedRules) == 0

	return verdict
}

func (c *classifier) Validate(condition string) error {
	_, err := CompileWithLimits(condition, c.limits)
	return err
}

// evaluateRule never panics; a panic inside evaluation is reported as
// ErrEvaluationPanic.
func (c *classifier) evaluateRule(condition string, counts LetterCounts) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			o = outcome{err: fmt.Errorf("%w: %v", ErrEvaluationPanic, r)}
		}
	}()

	ok, err := evaluate(condition, counts, c.limits)
	return outcome{satisfied: ok && err == nil, err: err}
}
