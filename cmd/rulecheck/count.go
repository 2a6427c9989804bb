package main

import (
	"fmt"

	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/spf13/cobra"
)

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [sentence]",
		Short: "Print the count of each letter A-Z",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := classify.Count(args[0])
			out := cmd.OutOrStdout()
			for letter := 'A'; letter <= 'Z'; letter++ {
				fmt.Fprintf(out, "%c %d\n", letter, counts.Get(letter))
			}
			fmt.Fprintf(out, "total %d\n", counts.Total())
			return nil
		},
	}
}
