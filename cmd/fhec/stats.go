package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cipherstack/fhec/logger"
)

var printListing bool

var statsCmd = &cobra.Command{
	Use:   "stats <circuit file>",
	Short: "Print node counts and multiplicative depth of a circuit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}
		stats := c.GetStats()
		fp := c.Fingerprint()
		log := logger.Logger()
		log.Info().
			Str("scheme", c.Scheme.String()).
			Int("nbNodes", stats.NbNodes).
			Int("nbEdges", stats.NbEdges).
			Int("nbInputs", stats.NbInputs).
			Int("nbMultiplications", stats.NbMultiplications).
			Int("nbRelinearizations", stats.NbRelinearizations).
			Int("nbOutputs", stats.NbOutputs).
			Int("multiplicativeDepth", stats.MultiplicativeDepth).
			Hex("fingerprint", fp[:8]).
			Msg("circuit stats")
		if printListing {
			c.Print(os.Stdout)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&printListing, "print", false, "also print the node listing")
}
