package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cipherstack/fhec/logger"
)

var pruneOutput string

var pruneCmd = &cobra.Command{
	Use:   "prune <circuit file>",
	Short: "Strip nodes the declared outputs do not depend on",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}

		pruned := c.Prune(c.Outputs())
		log := logger.Logger()
		log.Info().
			Int("nbNodesBefore", c.Graph.NodeCount()).
			Int("nbNodesAfter", pruned.Graph.NodeCount()).
			Int("nbEdgesAfter", pruned.Graph.EdgeCount()).
			Msg("pruned circuit")

		if err := pruned.Validate(); err != nil {
			return err
		}
		return os.WriteFile(pruneOutput, pruned.Serialize(), 0o644)
	},
}

func init() {
	pruneCmd.Flags().StringVarP(&pruneOutput, "output", "o", "circuit.pruned.bin", "where to write the pruned circuit")
}
