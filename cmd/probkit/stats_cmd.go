package main

import (
	"fmt"

	"github.com/probkit/probkit/stats"
	"github.com/spf13/cobra"
)

type statsReport struct {
	ExpectedValue float64 `json:"expected_value"`
	Variance      float64 `json:"variance"`
	StdDev        float64 `json:"std_dev"`
	Mode          float64 `json:"mode"`
	Median        float64 `json:"median"`
}

func newStatsCommand() *cobra.Command {
	var tokens []string
	cmd := &cobra.Command{
		Use:     "stats",
		Short:   "Descriptive statistics over a weighted outcome set",
		Example: "  probkit stats -o 1:1/6 -o 2:1/6 -o 3:1/6 -o 4:1/6 -o 5:1/6 -o 6:1/6",
		Run: func(cmd *cobra.Command, args []string) {
			outcomes, err := parseOutcomes(tokens)
			if err != nil {
				fatal(err)
			}
			if err := stats.ValidateOutcomes(outcomes); err != nil {
				fatal(err)
			}
			mean, err := stats.ExpectedValue(outcomes)
			if err != nil {
				fatal(err)
			}
			variance, err := stats.Variance(outcomes)
			if err != nil {
				fatal(err)
			}
			stdDev, err := stats.StdDev(outcomes)
			if err != nil {
				fatal(err)
			}
			mode, err := stats.Mode(outcomes)
			if err != nil {
				fatal(err)
			}
			median, err := stats.Median(outcomes)
			if err != nil {
				fatal(err)
			}
			report := statsReport{
				ExpectedValue: mean,
				Variance:      variance,
				StdDev:        stdDev,
				Mode:          mode,
				Median:        median,
			}
			render(report, func() {
				fmt.Printf("%s over %d outcomes\n", bold("statistics"), len(outcomes))
				fmt.Printf("expected value %.4f\n", mean)
				fmt.Printf("variance %.4f, stddev %.4f\n", variance, stdDev)
				fmt.Printf("mode %.4f, median %.4f\n", mode, median)
			})
		},
	}
	cmd.Flags().StringArrayVarP(&tokens, "outcome", "o", nil, "Weighted outcome as value:probability (repeatable)")
	return cmd
}
