package menu

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/solworks-dev/dlmm-checker/internal/audit"
	"github.com/solworks-dev/dlmm-checker/internal/configs"
	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
	"github.com/solworks-dev/dlmm-checker/internal/secrets"
	"github.com/solworks-dev/dlmm-checker/internal/ui"
)

// collectionSpec parameterizes the browse/edit state machine for one
// named-entry collection.
type collectionSpec struct {
	title        string
	entryNoun    string
	journalName  string
	secretLabel  string
	secretKey    func(entryID string) string
	entries      func(*configs.Document) *[]configs.NamedEntry
	requireProbe bool
}

func walletSpec() collectionSpec {
	return collectionSpec{
		title:       "Wallets",
		entryNoun:   "wallet",
		journalName: "wallets",
		secretLabel: "Private address",
		secretKey:   secrets.WalletSecretKey,
		entries:     func(d *configs.Document) *[]configs.NamedEntry { return &d.Wallets },
	}
}

func rpcEndpointSpec() collectionSpec {
	return collectionSpec{
		title:        "RPC endpoints",
		entryNoun:    "RPC endpoint",
		journalName:  "rpcEndpoints",
		secretLabel:  "RPC URL",
		secretKey:    secrets.RPCURLKey,
		entries:      func(d *configs.Document) *[]configs.NamedEntry { return &d.RPCEndpoints },
		requireProbe: true,
	}
}

// browse is the Browsing state: list entries, add, or go back.
func (s *Session) browse(ctx context.Context, spec collectionSpec) error {
	for {
		entries := sortedByOrder(*spec.entries(s.doc))

		items := make([]string, 0, len(entries)+3)
		for _, e := range entries {
			items = append(items, fmt.Sprintf("%d. %s", e.Order, e.Name))
		}
		items = append(items, "Add "+spec.entryNoun, "Back", "Back to main menu")

		choice, err := s.Prompt.Select(spec.title, items)
		if err != nil {
			return err
		}

		switch {
		case choice < len(entries):
			err = s.editEntry(ctx, spec, entries[choice].ID)
		case choice == len(entries):
			err = s.addEntry(ctx, spec)
		case choice == len(entries)+1:
			return nil
		default:
			return errBackToRoot
		}
		if err != nil {
			return err
		}
	}
}

// addEntry collects a new entry field by field. The entry is accepted (and
// the collection persisted) only once every requirement is met; an RPC
// endpoint additionally needs its URL to pass the health probe.
func (s *Session) addEntry(ctx context.Context, spec collectionSpec) error {
	entries := *spec.entries(s.doc)

	name, err := s.Prompt.Input("Name", "", validateName(entries, ""))
	if err != nil {
		return err
	}

	orderStr, err := s.Prompt.Input("Order", "1", validateOrder)
	if err != nil {
		return err
	}
	requestedOrder, _ := strconv.Atoi(orderStr)

	entry := configs.NamedEntry{
		ID:    configs.NewEntryID(),
		Name:  name,
		Order: requestedOrder,
	}

	secretValue := ""
	if s.secretsAvailable() {
		secretValue, err = s.collectSecret(ctx, spec, "")
		if err != nil {
			return err
		}
		if spec.requireProbe && secretValue == "" {
			// Probe failed and the operator abandoned: entry not accepted.
			s.Logger.WarnfUser("%s not added", spec.entryNoun)
			return nil
		}
	} else {
		s.warnNoKey()
		if spec.requireProbe {
			// An endpoint without a reachable URL can never be accepted.
			return nil
		}
	}

	*spec.entries(s.doc) = configs.Reindex(append(entries, entry), entry.ID, requestedOrder)
	if err := s.Params.Write(s.doc); err != nil {
		s.Logger.WarnfUser("could not save: %v", err)
		*spec.entries(s.doc) = entries
		return nil
	}

	if secretValue != "" {
		if err := s.Secrets.Store(spec.secretKey(entry.ID), secretValue, s.Key); err != nil {
			s.Logger.WarnfUser("entry saved, but storing the %s failed: %v", spec.secretLabel, err)
		}
	}

	finalIdx := configs.FindEntry(*spec.entries(s.doc), entry.ID)
	finalOrder := (*spec.entries(s.doc))[finalIdx].Order
	audit.Log(audit.Entry{Operation: "add", Collection: spec.journalName, EntryName: entry.Name, Order: finalOrder})
	s.Logger.Infof("Added %s %s at order %d", spec.entryNoun, entry.Name, finalOrder)
	fmt.Println(ui.Success.Sprint("✓") + " Added " + ui.Highlight.Sprint(entry.Name))
	return nil
}

// editEntry is the EditingEntry state for an existing entry. Non-secret
// fields are staged and restored on Cancel; secret writes happen
// immediately and are not undone.
func (s *Session) editEntry(ctx context.Context, spec collectionSpec, entryID string) error {
	entries := spec.entries(s.doc)
	idx := configs.FindEntry(*entries, entryID)
	if idx < 0 {
		return nil
	}

	snapshot := (*entries)[idx]
	staged := snapshot
	requestedOrder := staged.Order

	restore := func() {
		(*entries)[idx] = snapshot
	}

	for {
		secretState := ui.Masked(s.Secrets.Has(spec.secretKey(staged.ID)))

		choice, err := s.Prompt.Select("Edit "+spec.entryNoun+" "+ui.Highlight.Sprint(staged.Name), []string{
			"Name: " + staged.Name,
			"Order: " + strconv.Itoa(requestedOrder),
			spec.secretLabel + ": " + secretState,
			"Delete " + spec.entryNoun,
			"Cancel",
			"Save and back",
		})
		if err != nil {
			restore()
			return err
		}

		switch choice {
		case 0:
			name, err := s.Prompt.Input("Name", staged.Name, validateName(*entries, staged.ID))
			if err != nil {
				restore()
				return err
			}
			staged.Name = name
		case 1:
			orderStr, err := s.Prompt.Input("Order", strconv.Itoa(requestedOrder), validateOrder)
			if err != nil {
				restore()
				return err
			}
			requestedOrder, _ = strconv.Atoi(orderStr)
		case 2:
			if !s.secretsAvailable() {
				s.warnNoKey()
				continue
			}
			value, err := s.collectSecret(ctx, spec, staged.ID)
			if err != nil {
				restore()
				return err
			}
			if value != "" {
				if err := s.Secrets.Store(spec.secretKey(staged.ID), value, s.Key); err != nil {
					s.Logger.WarnfUser("could not store %s: %v", spec.secretLabel, err)
				} else {
					fmt.Println(ui.Info.Sprint("→") + " " + spec.secretLabel +
						" saved immediately " + ui.Muted.Sprint("not undone by Cancel"))
				}
			}
		case 3:
			deleted, err := s.deleteEntry(spec, staged.ID, staged.Name)
			if err != nil {
				restore()
				return err
			}
			if deleted {
				return nil
			}
		case 4:
			restore()
			return nil
		case 5:
			before := make([]configs.NamedEntry, len(*entries))
			copy(before, *entries)

			(*entries)[idx] = staged
			*entries = configs.Reindex(*entries, staged.ID, requestedOrder)
			if err := s.Params.Write(s.doc); err != nil {
				// Roll the collection back; the staged fields survive so
				// the operator can retry.
				s.Logger.WarnfUser("could not save: %v", err)
				*entries = before
				continue
			}
			finalIdx := configs.FindEntry(*entries, staged.ID)
			audit.Log(audit.Entry{Operation: "update", Collection: spec.journalName, EntryName: staged.Name, Order: (*entries)[finalIdx].Order})
			return nil
		}
	}
}

// deleteEntry asks for explicit confirmation, then removes the entry and
// its secret record and persists right away.
func (s *Session) deleteEntry(spec collectionSpec, entryID, name string) (bool, error) {
	yes, err := s.Prompt.Confirm("Delete " + spec.entryNoun + " " + ui.Highlight.Sprint(name))
	if err != nil {
		return false, err
	}
	if !yes {
		return false, nil
	}

	entries := spec.entries(s.doc)
	before := *entries
	kept := make([]configs.NamedEntry, 0, len(before))
	for _, e := range before {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	*entries = configs.Reindex(kept, "", 0)

	if err := s.Params.Write(s.doc); err != nil {
		s.Logger.WarnfUser("could not save: %v", err)
		*entries = before
		return false, nil
	}

	if err := s.Secrets.Delete(spec.secretKey(entryID)); err != nil {
		s.Logger.WarnfUser("entry removed, but its secret record was not: %v", err)
	}

	audit.Log(audit.Entry{Operation: "delete", Collection: spec.journalName, EntryName: name})
	s.Logger.Infof("Deleted %s %s", spec.entryNoun, name)
	fmt.Println(ui.Success.Sprint("✓") + " Deleted " + ui.Highlight.Sprint(name))
	return true, nil
}

// collectSecret prompts for a secret value. For collections that require
// a probe the value must pass the health check before it is accepted; on
// failure the operator chooses between retrying and abandoning. Returns
// "" when the operator abandons or skips.
func (s *Session) collectSecret(ctx context.Context, spec collectionSpec, entryID string) (string, error) {
	_ = entryID // presence is shown by the caller; plaintext is never read back here
	for {
		value, err := s.Prompt.Secret(spec.secretLabel+" "+ui.Muted.Sprint("empty to skip"), nil)
		if err != nil {
			return "", err
		}
		if value == "" {
			return "", nil
		}

		if !spec.requireProbe {
			return value, nil
		}

		timeout := time.Duration(s.doc.CodeSettings.TimeoutSeconds) * time.Second
		if s.Probe(ctx, value, timeout) {
			fmt.Println(ui.Success.Sprint("✓") + " endpoint is healthy")
			return value, nil
		}

		retry, err := s.Prompt.Confirm("Endpoint did not respond as healthy. Try again")
		if err != nil {
			return "", err
		}
		if !retry {
			return "", nil
		}
	}
}

func sortedByOrder(entries []configs.NamedEntry) []configs.NamedEntry {
	out := make([]configs.NamedEntry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

func validateName(entries []configs.NamedEntry, skipID string) func(string) error {
	return func(name string) error {
		if name == "" {
			return cerrors.ErrEmptyName
		}
		if configs.NameTaken(entries, name, skipID) {
			return cerrors.ErrDuplicateName
		}
		return nil
	}
}

func validateOrder(input string) error {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return cerrors.ErrInvalidOrder
	}
	return nil
}
