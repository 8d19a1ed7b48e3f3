// Command probkit is a thin command-line front end for the probkit
// library: distribution evaluation, probability algebra, and Monte
// Carlo estimation. All numeric behavior lives in the library; this
// binary only parses input and renders output.
package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:     "probkit",
		Short:   "Probability algebra, distributions, and Monte Carlo estimation",
		Version: version + " (" + commit + ")",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}

	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	root.PersistentFlags().Bool("json", false, "Emit JSON output")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	viper.SetEnvPrefix("PROBKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(root.PersistentFlags()); err != nil {
		fatal(err)
	}

	root.AddCommand(newDistCommand())
	root.AddCommand(newEstimateCommand())
	root.AddCommand(newAtLeastOneCommand())
	root.AddCommand(newStatsCommand())

	if err := root.Execute(); err != nil {
		fatal(err)
	}
}

func configureLogging() {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	log.Logger = log.Output(writer).Level(zerolog.WarnLevel)
	if viper.GetBool("verbose") {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
}
