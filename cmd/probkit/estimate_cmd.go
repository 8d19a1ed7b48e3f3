package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gofrs/uuid"
	"github.com/probkit/probkit"
	"github.com/probkit/probkit/sample"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type estimateReport struct {
	ID         string  `json:"id"`
	Source     float64 `json:"source"`
	Samples    int     `json:"samples"`
	Successes  int     `json:"successes"`
	Estimate   float64 `json:"estimate"`
	Lower      float64 `json:"wilson_lower"`
	Upper      float64 `json:"wilson_upper"`
	Confidence float64 `json:"confidence"`
}

func newEstimateCommand() *cobra.Command {
	var (
		prob       string
		samples    int
		seed       int64
		confidence float64
	)
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Recover a probability through Monte Carlo sampling",
		Run: func(cmd *cobra.Command, args []string) {
			p, err := parseProbability(prob)
			if err != nil {
				fatal(err)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			id, err := uuid.NewV4()
			if err != nil {
				fatal(err)
			}
			log.Debug().
				Str("id", id.String()).
				Int64("seed", seed).
				Int("samples", samples).
				Msg("starting estimation run")

			if samples <= 0 {
				fatal("samples must be positive")
			}
			successes, err := sample.CountSuccesses(p, samples, rng)
			if err != nil {
				fatal(err)
			}
			estimate, err := probkit.FromRatio(successes, samples)
			if err != nil {
				fatal(err)
			}
			interval, err := sample.WilsonInterval(successes, samples, confidence)
			if err != nil {
				fatal(err)
			}

			report := estimateReport{
				ID:         id.String(),
				Source:     p.Value(),
				Samples:    samples,
				Successes:  successes,
				Estimate:   estimate.Value(),
				Lower:      interval.Lower.Value(),
				Upper:      interval.Upper.Value(),
				Confidence: interval.Level,
			}
			render(report, func() {
				fmt.Printf("%s %s\n", bold("experiment"), id)
				fmt.Printf("source %s, estimate %s over %d samples\n",
					p.String(), green(estimate.String()), samples)
				fmt.Printf("%.0f%% interval [%s, %s]\n",
					interval.Level*100, interval.Lower.Text("%.4f"), interval.Upper.Text("%.4f"))
			})
		},
	}
	cmd.Flags().StringVarP(&prob, "probability", "p", "0.5", "Probability to sample (magnitude or ratio)")
	cmd.Flags().IntVarP(&samples, "samples", "s", 10000, "Number of samples")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 for time-based)")
	cmd.Flags().Float64Var(&confidence, "confidence", 0.95, "Wilson interval confidence level")
	return cmd
}
