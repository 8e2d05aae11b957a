package cmd

import (
	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the SOL balance of every configured wallet and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := newSession()
		if err != nil {
			return err
		}
		return session.Actions.WalletBalances(cmd.Context(), session.Document())
	},
}
