package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask the coach a question about your training",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reply, err := current.coachService.Ask(cmd.Context(), userID, strings.Join(args, " "))
		if err != nil {
			return err
		}
		if reply == "" {
			fmt.Println(mutedStyle.Sprint("The coach is not available right now."))
			return nil
		}
		fmt.Println(reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
