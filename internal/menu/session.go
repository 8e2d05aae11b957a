package menu

import (
	"context"
	"errors"
	"time"

	"github.com/solworks-dev/dlmm-checker/internal/configs"
	logger "github.com/solworks-dev/dlmm-checker/internal/logging"
	"github.com/solworks-dev/dlmm-checker/internal/secrets"
	"github.com/solworks-dev/dlmm-checker/internal/ui"
)

// errBackToRoot unwinds nested menus straight back to the main menu.
var errBackToRoot = errors.New("back to main menu")

// ProbeFunc checks a candidate RPC URL for liveness within a timeout.
type ProbeFunc func(ctx context.Context, url string, timeout time.Duration) bool

// Actions are the non-settings flows reachable from the main menu. They
// receive the current document so they can resolve the default wallet and
// RPC endpoint.
type Actions struct {
	CheckPositions func(ctx context.Context, doc *configs.Document) error
	WalletBalances func(ctx context.Context, doc *configs.Document) error
}

// Session owns one interactive run: the staged document, the session
// encryption key, and the prompting surface. Key is nil when no
// encryption key could be established; secret-touching operations are
// disabled for the rest of the session but parameter editing continues.
type Session struct {
	Params  *configs.Store
	Secrets *secrets.Store
	Key     []byte
	Prompt  Prompter
	Probe   ProbeFunc
	Actions Actions
	Logger  logger.Logger

	doc *configs.Document
}

// NewSession loads the parameter document and returns a ready session.
func NewSession(params *configs.Store, secretStore *secrets.Store, key []byte, prompt Prompter, probe ProbeFunc, actions Actions, log logger.Logger) *Session {
	return &Session{
		Params:  params,
		Secrets: secretStore,
		Key:     key,
		Prompt:  prompt,
		Probe:   probe,
		Actions: actions,
		Logger:  log,
		doc:     params.Read(),
	}
}

// Document exposes the staged document, for the action callbacks and tests.
func (s *Session) Document() *configs.Document {
	return s.doc
}

// Run is the top-level interactive loop. It returns nil when the operator
// exits deliberately; an interrupt first asks for confirmation.
func (s *Session) Run(ctx context.Context) error {
	for {
		choice, err := s.Prompt.Select("Main menu", []string{
			"Check DLMM positions",
			"Wallet balances",
			"Settings",
			"Exit",
		})
		if err != nil {
			if s.confirmExit(err) {
				return nil
			}
			continue
		}

		switch choice {
		case 0:
			s.runAction(ctx, s.Actions.CheckPositions)
		case 1:
			s.runAction(ctx, s.Actions.WalletBalances)
		case 2:
			if err := s.runSettings(ctx); err != nil && !errors.Is(err, errBackToRoot) {
				if s.confirmExit(err) {
					return nil
				}
			}
		case 3:
			return nil
		}
	}
}

// RunSettings drives the settings sub-tree directly, for the settings
// subcommand. Leaving the tree in any direction just ends the run.
func (s *Session) RunSettings(ctx context.Context) error {
	err := s.runSettings(ctx)
	if errors.Is(err, errBackToRoot) || errors.Is(err, ErrCancelled) {
		return nil
	}
	return err
}

// runSettings drives the settings sub-tree: code settings and the two
// named-entry collections.
func (s *Session) runSettings(ctx context.Context) error {
	for {
		choice, err := s.Prompt.Select("Settings", []string{
			"Code settings",
			"Wallets",
			"RPC endpoints",
			"Back",
		})
		if err != nil {
			return err
		}

		switch choice {
		case 0:
			if err := s.editCodeSettings(); err != nil {
				if errors.Is(err, errBackToRoot) {
					return err
				}
				if errors.Is(err, ErrCancelled) {
					continue
				}
				return err
			}
		case 1:
			if err := s.browse(ctx, walletSpec()); err != nil {
				if errors.Is(err, errBackToRoot) {
					return err
				}
				if errors.Is(err, ErrCancelled) {
					continue
				}
				return err
			}
		case 2:
			if err := s.browse(ctx, rpcEndpointSpec()); err != nil {
				if errors.Is(err, errBackToRoot) {
					return err
				}
				if errors.Is(err, ErrCancelled) {
					continue
				}
				return err
			}
		case 3:
			return nil
		}
	}
}

func (s *Session) runAction(ctx context.Context, action func(context.Context, *configs.Document) error) {
	if action == nil {
		return
	}
	if err := action(ctx, s.doc); err != nil {
		s.Logger.WarnfUser("%v", err)
	}
}

// confirmExit handles an interrupted prompt: a genuine interrupt requires
// explicit confirmation before the session ends, anything else is fatal.
func (s *Session) confirmExit(cause error) bool {
	if !errors.Is(cause, ErrCancelled) {
		s.Logger.Errorf("prompt failed: %v", cause)
		return true
	}
	yes, err := s.Prompt.Confirm("Exit? Unsaved edits will be lost")
	if err != nil {
		// A second interrupt means the operator really wants out.
		return true
	}
	return yes
}

// secretsAvailable reports whether secret operations can run this session.
func (s *Session) secretsAvailable() bool {
	return s.Key != nil
}

func (s *Session) warnNoKey() {
	s.Logger.WarnfUser("no encryption key available this session; %s",
		ui.Muted.Sprint("secret fields cannot be read or written"))
}
