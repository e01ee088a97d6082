package main

import (
	"errors"

	"mufasa/fitness-brain/internal/config"

	"github.com/spf13/cobra"
)

var (
	configPath string
	userID     string

	// current is wired by the root command before any subcommand runs.
	current *app
)

var rootCmd = &cobra.Command{
	Use:           "coach",
	Short:         "Personal training program scheduler and workout generator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !needsApp(cmd) {
			return nil
		}
		if userID == "" {
			return errors.New("a user is required (--user or COACH_USER)")
		}
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		a, err := newApp(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		current = a
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Directory holding config.yaml and .env")
	rootCmd.PersistentFlags().StringVarP(&userID, "user", "u", envOr("COACH_USER", ""), "User the command acts for")
}

// needsApp reports whether cmd touches storage; cobra's built-in help and
// completion commands do not.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion":
			return false
		}
	}
	return true
}
