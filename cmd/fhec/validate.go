package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cipherstack/fhec/ir"
	"github.com/cipherstack/fhec/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate <circuit file>",
	Short: "Check a circuit for structural errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(args[0])
		if err != nil {
			return err
		}
		log := logger.Logger()
		err = c.Validate()
		if err == nil {
			log.Info().Str("scheme", c.Scheme.String()).Msg("circuit is valid")
			return nil
		}
		var irErr *ir.IRError
		if errors.As(err, &irErr) {
			for _, finding := range irErr.Errors {
				log.Error().Msg(finding.Error())
			}
		}
		return err
	},
}
