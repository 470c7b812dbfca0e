// fhec inspects serialized FHE circuits: structural stats, validation, and
// dead-code pruning ahead of lowering.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cipherstack/fhec/ir"
	"github.com/cipherstack/fhec/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fhec",
	Short: "Inspect and transform serialized FHE circuits",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(pruneCmd)
}

func loadCircuit(path string) (*ir.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ir.Deserialize(data)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log := logger.Logger()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
