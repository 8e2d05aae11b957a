package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/solworks-dev/dlmm-checker/internal/configs"
)

// Entry represents a single journal entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"` // add, update, delete, save-settings.

	// Optional fields depending on operation.
	Collection string `json:"collection,omitempty"` // wallets or rpcEndpoints.
	EntryName  string `json:"entry,omitempty"`      // Display name of the affected entry.
	Order      int    `json:"order,omitempty"`      // Final rank after reindexing.
}

// Log appends an entry to the journal.
// If journaling fails the edit itself still succeeds, so errors are
// swallowed here.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// LogPath returns the path to the journal, next to the parameter document.
func LogPath() string {
	if configs.AppSettings == nil || configs.AppSettings.ParamsPath == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(configs.AppSettings.ParamsPath), "changes.jsonl")
}

// ReadEntries reads all entries from the journal.
// Returns an empty slice if the journal doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into journal entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
