// Command rulecheck evaluates letter-frequency rules against sentences
// without a server or database.
//
//	rulecheck count "The quick brown fox"
//	rulecheck check --rules rules.toml "AAAABBBBCCCC"
//	rulecheck validate --rules rules.toml
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errRulesFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
