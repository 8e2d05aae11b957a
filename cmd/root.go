package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/solworks-dev/dlmm-checker/internal/configs"
	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
	"github.com/solworks-dev/dlmm-checker/internal/utils"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "dlmm-checker",
		Short: "Check Meteora DLMM positions and manage the parameters behind the checks",
		Long: `dlmm-checker is an interactive tool for a Solana DeFi position-checking
workflow. It keeps a small set of user parameters (wallets, RPC endpoints,
timeouts) in a local configuration file, with every sensitive value
encrypted at rest under a passphrase-derived key.

Run it without arguments for the interactive menu, or jump straight to a
flow with a subcommand.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = newLogger()
			Logger.Debugf("Initializing with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !utils.IsTerminal() {
				return fmt.Errorf("the interactive menu needs a terminal; use a subcommand instead")
			}

			banner := figure.NewColorFigure("dlmm checker", "", "green", true)
			banner.Print()
			fmt.Println()

			session, err := newSession()
			if err != nil {
				return err
			}
			return session.Run(cmd.Context())
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(checkCmd)
	RootCmd.AddCommand(balanceCmd)
	RootCmd.AddCommand(settingsCmd)
	RootCmd.AddCommand(historyCmd)
}

// newLogger builds the session logger, teeing an uncolored copy of every
// line to the session log file when it can be opened.
func newLogger() logger.Logger {
	l := logger.Logger{Verbose: verbose, Debug: debug}

	path := configs.AppSettings.SessionLogPath
	if path == "" {
		return l
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return l
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		// The session still works without a log file.
		return l
	}
	l.Sink = f
	return l
}
