package main

import (
	"errors"
	"fmt"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/service"
	"mufasa/fitness-brain/internal/session"

	"github.com/spf13/cobra"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the calendar of the latest program with completed days ticked",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sched, err := current.programService.LoadSchedule(ctx, userID)
		if errors.Is(err, service.ErrProgramNotFound) {
			fmt.Println("No program yet. Import one with `coach import-program <file>`.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to load schedule: %w", err)
		}
		history, err := current.workoutService.GetHistory(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		done := session.CompletedDates(history)

		printBoxedHeader("SCHEDULE")
		for _, e := range sched.Entries() {
			printEntry(e, done[domain.DateKey(e.Date)])
			fmt.Println()
		}
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's program day, or the next one",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := current.programService.Today(cmd.Context(), userID)
		switch {
		case errors.Is(err, service.ErrProgramNotFound), errors.Is(err, service.ErrNoScheduledDays):
			fmt.Println("Nothing scheduled.")
			return nil
		case err != nil:
			return fmt.Errorf("failed to load today: %w", err)
		}
		printEntry(entry, false)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(todayCmd)
}
