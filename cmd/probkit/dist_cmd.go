package main

import (
	"fmt"

	"github.com/probkit/probkit/dist"
	"github.com/spf13/cobra"
)

type distReport struct {
	Distribution string  `json:"distribution"`
	Probability  float64 `json:"probability"`
	Cumulative   float64 `json:"cumulative"`
	Mean         float64 `json:"mean"`
	Variance     float64 `json:"variance"`
	StdDev       float64 `json:"std_dev"`
}

func newDistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dist",
		Short: "Evaluate a closed-form distribution",
	}
	cmd.AddCommand(newBinomialCommand(), newNormalCommand(), newPoissonCommand())
	return cmd
}

func newBinomialCommand() *cobra.Command {
	var (
		n    int
		k    int
		prob string
	)
	cmd := &cobra.Command{
		Use:   "binomial",
		Short: "Probability of k successes in n trials",
		Run: func(cmd *cobra.Command, args []string) {
			p, err := parseProbability(prob)
			if err != nil {
				fatal(err)
			}
			b, err := dist.NewBinomial(n, p)
			if err != nil {
				fatal(err)
			}
			pmf, err := b.Probability(k)
			if err != nil {
				fatal(err)
			}
			cdf, err := b.Cumulative(k)
			if err != nil {
				fatal(err)
			}
			report := distReport{
				Distribution: "binomial",
				Probability:  pmf.Value(),
				Cumulative:   cdf.Value(),
				Mean:         b.Mean(),
				Variance:     b.Variance(),
				StdDev:       b.StdDev(),
			}
			render(report, func() {
				fmt.Printf("%s exactly %d of %d: %s\n", bold("binomial"), k, n, green(pmf.String()))
				fmt.Printf("at most %d: %s\n", k, cdf.String())
				fmt.Printf("mean %.4f, variance %.4f, stddev %.4f\n", b.Mean(), b.Variance(), b.StdDev())
			})
		},
	}
	cmd.Flags().IntVarP(&n, "trials", "n", 10, "Number of trials")
	cmd.Flags().IntVarP(&k, "successes", "k", 5, "Number of successes")
	cmd.Flags().StringVarP(&prob, "probability", "p", "0.5", "Per-trial success probability (magnitude or ratio)")
	return cmd
}

func newNormalCommand() *cobra.Command {
	var (
		x      float64
		mean   float64
		stdDev float64
	)
	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Density and cumulative probability at a point",
		Run: func(cmd *cobra.Command, args []string) {
			n, err := dist.NewNormal(mean, stdDev)
			if err != nil {
				fatal(err)
			}
			report := distReport{
				Distribution: "normal",
				Probability:  n.PDF(x),
				Cumulative:   n.CDF(x).Value(),
				Mean:         n.Mean(),
				Variance:     n.Variance(),
				StdDev:       n.StdDev(),
			}
			render(report, func() {
				fmt.Printf("%s density at %.4f: %.6f\n", bold("normal"), x, n.PDF(x))
				fmt.Printf("cumulative: %s (z = %.4f)\n", green(n.CDF(x).String()), n.ZScore(x))
			})
		},
	}
	cmd.Flags().Float64VarP(&x, "at", "x", 0, "Evaluation point")
	cmd.Flags().Float64Var(&mean, "mean", 0, "Distribution mean")
	cmd.Flags().Float64Var(&stdDev, "stddev", 1, "Standard deviation")
	return cmd
}

func newPoissonCommand() *cobra.Command {
	var (
		k      int
		lambda float64
	)
	cmd := &cobra.Command{
		Use:   "poisson",
		Short: "Probability of k events at rate lambda",
		Run: func(cmd *cobra.Command, args []string) {
			p, err := dist.NewPoisson(lambda)
			if err != nil {
				fatal(err)
			}
			pmf, err := p.Probability(k)
			if err != nil {
				fatal(err)
			}
			cdf, err := p.Cumulative(k)
			if err != nil {
				fatal(err)
			}
			report := distReport{
				Distribution: "poisson",
				Probability:  pmf.Value(),
				Cumulative:   cdf.Value(),
				Mean:         p.Mean(),
				Variance:     p.Variance(),
				StdDev:       p.StdDev(),
			}
			render(report, func() {
				fmt.Printf("%s exactly %d at rate %.4f: %s\n", bold("poisson"), k, lambda, green(pmf.String()))
				fmt.Printf("at most %d: %s\n", k, cdf.String())
			})
		},
	}
	cmd.Flags().IntVarP(&k, "events", "k", 2, "Number of events")
	cmd.Flags().Float64VarP(&lambda, "rate", "l", 2, "Event rate lambda")
	return cmd
}
