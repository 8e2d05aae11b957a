package cmd

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"

	"github.com/solworks-dev/dlmm-checker/internal/configs"
	"github.com/solworks-dev/dlmm-checker/internal/menu"
	"github.com/solworks-dev/dlmm-checker/internal/probe"
	"github.com/solworks-dev/dlmm-checker/internal/secrets"
	"github.com/solworks-dev/dlmm-checker/internal/ui"
	"github.com/solworks-dev/dlmm-checker/internal/utils"
)

// newSession assembles a full interactive session: parameter store, secret
// store, session key, prompter, and the on-chain action callbacks. A key
// initialization failure is not fatal; the session continues with secret
// operations disabled.
func newSession() (*menu.Session, error) {
	params := configs.NewStore(Logger)
	secretStore := secrets.NewStore(Logger)

	key, err := secrets.GetOrCreateKey(
		configs.AppSettings.KeyPath,
		configs.AppSettings.ConfirmPassphrase,
		utils.ReadPassphrase,
		Logger,
	)
	if err != nil {
		Logger.WarnfUser("%v", err)
		Logger.WarnfUser("continuing without secrets; parameter editing still works")
		key = nil
	}

	return menu.NewSession(
		params,
		secretStore,
		key,
		menu.NewPrompter(),
		probe.Probe,
		sessionActions(secretStore, key),
		Logger,
	), nil
}

// startSpinner shows a spinner unless verbose or debug output is active,
// in which case the log lines themselves show progress.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
		}
		s.FinalMSG = finalMsg
		s.Stop()
	}

	return s, cleanup
}
