package main

import (
	"fmt"

	"github.com/chenna14/Real-time-Data-Classification/internal/rulefile"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Compile every condition of a rule file",
		Long:  `Reports each condition that would be rejected by the API server. Exits with status 1 when any is invalid.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := rulefile.Load(opts.rulesPath)
			if err != nil {
				return err
			}

			classifier := opts.classifier()
			out := cmd.OutOrStdout()
			invalid := 0
			for i, rule := range rules {
				if err := classifier.Validate(rule.Condition); err != nil {
					invalid++
					fmt.Fprintf(out, "rule %d: %q: %v\n", i+1, rule.Condition, err)
				}
			}

			if invalid > 0 {
				fmt.Fprintf(out, "%d of %d rule(s) invalid\n", invalid, len(rules))
				return errRulesFailed
			}
			fmt.Fprintf(out, "%d rule(s) valid\n", len(rules))
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.rulesPath, "rules", "r", "", "TOML rule file")
	_ = cmd.MarkFlagRequired("rules")
	return cmd
}
