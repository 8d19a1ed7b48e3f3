package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAtLeastOneCommand() *cobra.Command {
	var (
		prob   string
		trials int
	)
	cmd := &cobra.Command{
		Use:   "atleastone",
		Short: "Probability of at least one success over repeated trials",
		Run: func(cmd *cobra.Command, args []string) {
			p, err := parseProbability(prob)
			if err != nil {
				fatal(err)
			}
			result, err := p.AtLeastOne(trials)
			if err != nil {
				fatal(err)
			}
			report := struct {
				Source float64 `json:"source"`
				Trials int     `json:"trials"`
				Result float64 `json:"result"`
			}{p.Value(), trials, result.Value()}
			render(report, func() {
				fmt.Printf("at least one success of %s over %d trials: %s\n",
					p.String(), trials, green(result.Text("%.2f%%")))
			})
		},
	}
	cmd.Flags().StringVarP(&prob, "probability", "p", "1/6", "Per-trial probability (magnitude or ratio)")
	cmd.Flags().IntVarP(&trials, "trials", "n", 4, "Number of independent trials")
	return cmd
}
