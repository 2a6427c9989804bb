package main

import (
	"errors"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/spf13/cobra"
)

// errRulesFailed signals a completed run whose verdict was negative. The
// report has already been printed, so main only sets the exit status.
var errRulesFailed = errors.New("rules failed")

type options struct {
	rulesPath  string
	jsonOutput bool
	workers    int
}

func (o *options) classifier() classify.Service {
	return classify.NewService(classify.WithWorkers(o.workers))
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "rulecheck",
		Short:         "Check sentences against letter-frequency rules",
		Long:          `Count letters in sentences and evaluate rule files offline, using the same engine as the API server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVarP(&opts.workers, "workers", "w", 4, "goroutines evaluating rules of one sentence")

	root.AddCommand(newCountCmd())
	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	return root
}
