package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/solworks-dev/dlmm-checker/internal/audit"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the journal of committed parameter changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := audit.ReadEntries()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read change journal: %v", err)
		}
		if len(entries) == 0 {
			fmt.Println("No parameter changes recorded yet.")
			return nil
		}

		for _, e := range entries {
			line := fmt.Sprintf("%s  %-13s", color.HiBlackString(e.Timestamp), e.Operation)
			if e.Collection != "" {
				line += " " + e.Collection
			}
			if e.EntryName != "" {
				line += " " + color.CyanString(e.EntryName)
			}
			if e.Order > 0 {
				line += fmt.Sprintf(" (order %d)", e.Order)
			}
			fmt.Println(line)
		}
		return nil
	},
}
