package menu

import (
	"strconv"

	"github.com/solworks-dev/dlmm-checker/internal/audit"
	cerrors "github.com/solworks-dev/dlmm-checker/internal/errors"
)

// editCodeSettings is the EditingEntry state for the scalar settings
// group. Both fields are staged and committed together on Save.
func (s *Session) editCodeSettings() error {
	snapshot := s.doc.CodeSettings
	staged := snapshot

	for {
		choice, err := s.Prompt.Select("Code settings", []string{
			"Timeout seconds: " + strconv.Itoa(staged.TimeoutSeconds),
			"Attempts: " + strconv.Itoa(staged.Attempts),
			"Cancel",
			"Save and back",
		})
		if err != nil {
			s.doc.CodeSettings = snapshot
			return err
		}

		switch choice {
		case 0:
			v, err := s.Prompt.Input("Timeout seconds", strconv.Itoa(staged.TimeoutSeconds), validatePositiveInt)
			if err != nil {
				s.doc.CodeSettings = snapshot
				return err
			}
			staged.TimeoutSeconds, _ = strconv.Atoi(v)
		case 1:
			v, err := s.Prompt.Input("Attempts", strconv.Itoa(staged.Attempts), validatePositiveInt)
			if err != nil {
				s.doc.CodeSettings = snapshot
				return err
			}
			staged.Attempts, _ = strconv.Atoi(v)
		case 2:
			s.doc.CodeSettings = snapshot
			return nil
		case 3:
			s.doc.CodeSettings = staged
			if err := s.Params.Write(s.doc); err != nil {
				s.Logger.WarnfUser("could not save: %v", err)
				continue
			}
			audit.Log(audit.Entry{Operation: "save-settings", Collection: "codeSettings"})
			return nil
		}
	}
}

func validatePositiveInt(input string) error {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 {
		return cerrors.ErrInvalidNumber
	}
	return nil
}
