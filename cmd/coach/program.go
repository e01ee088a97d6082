package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importProgramCmd = &cobra.Command{
	Use:   "import-program <file>",
	Short: "Import a program from a JSON or TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := current.programService.ImportProgram(cmd.Context(), userID, args[0])
		if err != nil {
			return fmt.Errorf("failed to import program: %w", err)
		}
		fmt.Printf("✅ Imported program %s (%d days)\n", p.ID, p.DayCount())
		if p.Title != "" {
			printMetric("Title", p.Title)
		}
		if p.StartDate != nil {
			printMetric("Starts", p.StartDate.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importProgramCmd)
}
