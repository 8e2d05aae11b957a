package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fetch the DLMM positions of the default wallet and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		return session.Actions.CheckPositions(cmd.Context(), session.Document())
	},
}
