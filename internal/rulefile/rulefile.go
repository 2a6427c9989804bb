// Package rulefile reads rule sets from TOML documents for offline use.
//
// A rule file is a list of [[rule]] tables evaluated in file order:
//
//	[[rule]]
//	condition = "(A + B) > 10 && min(C, D) < 5"
//
//	[[rule]]
//	condition = "max(E, F, G) > 3"
package rulefile

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidFile is wrapped by every error about a document's content.
var ErrInvalidFile = errors.New("invalid rule file")

type document struct {
	Rules []entry `toml:"rule"`
}

type entry struct {
	Condition string `toml:"condition"`
}

// Load reads and parses the rule file at path.
func Load(path string) ([]domain.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rule file: %w", err)
	}

	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Parse decodes a rule file. All rules share one generated owner so they
// form a single rule set. Conditions are checked for presence and length
// only; compiling them is left to the classifier.
func Parse(data []byte) ([]domain.Rule, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", ErrInvalidFile, row, col, decodeErr.Error())
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	owner := uuid.New()
	rules := make([]domain.Rule, 0, len(doc.Rules))
	for i, e := range doc.Rules {
		rule, err := domain.NewRule(owner, e.Condition)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %d: %w", ErrInvalidFile, i+1, err)
		}
		rules = append(rules, *rule)
	}

	return rules, nil
}
