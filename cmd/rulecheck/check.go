package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/rulefile"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [sentence]",
		Short: "Classify a sentence against a rule file",
		Long:  `Evaluates every rule of the file in order. Exits with status 1 when any rule fails.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rulefile.Load(opts.rulesPath)
			if err != nil {
				return err
			}

			verdict := opts.classifier().Classify(args[0], rules)

			if opts.jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), verdict); err != nil {
					return err
				}
			} else {
				writeVerdict(cmd.OutOrStdout(), verdict)
			}

			if !verdict.AllRulesSatisfied {
				return errRulesFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.rulesPath, "rules", "r", "", "TOML rule file")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "print the verdict as JSON")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}

func writeJSON(w io.Writer, verdict classify.Verdict) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(verdict)
}

func writeVerdict(w io.Writer, verdict classify.Verdict) {
	if verdict.AllRulesSatisfied {
		fmt.Fprintln(w, "PASS all rules satisfied")
		return
	}

	fmt.Fprintf(w, "FAIL %d rule(s) not satisfied\n", len(verdict.FailedRules))
	for _, f := range verdict.FailedRules {
		fmt.Fprintf(w, "  %s\n", f.Condition)
	}
	for _, d := range verdict.Diagnostics {
		fmt.Fprintf(w, "  rule %d could not be evaluated: %v\n", d.Index+1, d.Err)
	}
}
