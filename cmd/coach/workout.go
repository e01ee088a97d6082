package main

import (
	"errors"
	"fmt"
	"time"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/service"
	"mufasa/fitness-brain/internal/workout"

	"github.com/spf13/cobra"
)

var (
	findings  []string
	plainPlan bool

	setReps   int
	setWeight float64
	setNotes  string

	markDate  string
	resetSure bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate today's workout and make it the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := current.workoutService.GenerateWorkout(ctx, userID, domain.AssessmentFindings(findings))
		if err != nil {
			return fmt.Errorf("failed to generate workout: %w", err)
		}
		if !plainPlan {
			printSession(s)
			return nil
		}
		days := 0
		if p, err := current.profileService.GetProfile(ctx, userID); err == nil {
			days = p.DaysPerWeek
		}
		fmt.Println(workout.RenderPlan(s, days))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := current.workoutService.GetActiveWorkout(cmd.Context(), userID)
		if err != nil {
			return noActive(err)
		}
		printSession(s)
		return nil
	},
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start coaching the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := current.workoutService.StartWorkout(cmd.Context(), userID)
		if err != nil {
			return noActive(err)
		}
		fmt.Printf("✅ Started %s\n", s.ID)
		return nil
	},
}

var logSetCmd = &cobra.Command{
	Use:   "log-set",
	Short: "Log a performed set at the current slot of the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		before, err := current.workoutService.GetActiveWorkout(cmd.Context(), userID)
		if err != nil {
			return noActive(err)
		}
		s, err := current.workoutService.LogSet(cmd.Context(), userID, domain.SetResult{
			Reps:   setReps,
			Weight: setWeight,
			Notes:  setNotes,
		})
		if err != nil {
			return fmt.Errorf("failed to log set: %w", err)
		}
		fmt.Printf("✅ Logged %s set %d: %d reps", before.Current.Slot, before.Current.SetIndex, setReps)
		if setWeight > 0 {
			fmt.Printf(" @ %.1f", setWeight)
		}
		fmt.Println()
		if s.AllSetsLogged() {
			fmt.Println("All sets logged. Finish with `coach complete`.")
		} else if s.Current != before.Current {
			printMetric("Next", fmt.Sprintf("%s set %d", s.Current.Slot, s.Current.SetIndex))
		}
		return nil
	},
}

var completeCmd = &cobra.Command{
	Use:   "complete",
	Short: "Complete the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := current.workoutService.CompleteWorkout(cmd.Context(), userID)
		if err != nil {
			return noActive(err)
		}
		fmt.Printf("🏁 Completed %s at %s\n", s.ID, s.CompletedAt.Local().Format("15:04"))
		return nil
	},
}

var markDayCmd = &cobra.Command{
	Use:   "mark-day",
	Short: "Mark the workout of a date (YYYY-MM-DD, default today) as completed",
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if markDate != "" {
			parsed, err := domain.ParseDate(markDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", markDate, err)
			}
			day = parsed
		}
		s, err := current.workoutService.MarkDayComplete(cmd.Context(), userID, day)
		if errors.Is(err, service.ErrSessionNotFound) {
			fmt.Printf("No workout on %s.\n", domain.DateKey(day))
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to mark day: %w", err)
		}
		fmt.Printf("✅ %s marked completed\n", domain.DateKey(s.Date))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show this week's planned, completed and consistency",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := current.workoutService.GetWeeklyStats(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}
		printBoxedHeader("THIS WEEK")
		printMetric("Week of", domain.DateKey(st.WeekStart))
		printMetric("Planned", st.Planned)
		printMetric("Completed", st.Completed)
		printMetric("Consistency", fmt.Sprintf("%d%%", st.Consistency))
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := current.workoutService.GetHistory(cmd.Context(), userID)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No workouts yet.")
			return nil
		}
		printBoxedHeader("HISTORY")
		for _, s := range history {
			fmt.Printf("  %s  %-22s %s\n", labelStyle.Sprint(domain.DateKey(s.Date)), statusText(s.Status), mutedStyle.Sprint(s.ID))
		}
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the active workout and the whole history",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetSure {
			return errors.New("reset deletes all workouts; pass --yes to confirm")
		}
		if err := current.workoutService.ResetWorkouts(cmd.Context(), userID); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		fmt.Println("🧹 Workouts cleared")
		return nil
	},
}

func noActive(err error) error {
	if errors.Is(err, service.ErrNoActiveSession) {
		return errors.New("no active workout, run `coach generate` first")
	}
	if errors.Is(err, domain.ErrInvalidState) {
		return fmt.Errorf("workout cannot change: %w", err)
	}
	return err
}

func init() {
	rootCmd.AddCommand(generateCmd, showCmd, startCmd, logSetCmd, completeCmd, markDayCmd, statsCmd, historyCmd, resetCmd)

	generateCmd.Flags().StringArrayVarP(&findings, "finding", "f", nil, "Movement assessment finding (repeatable)")
	generateCmd.Flags().BoolVar(&plainPlan, "plain", false, "Print the plain-text plan")

	logSetCmd.Flags().IntVarP(&setReps, "reps", "r", 0, "Reps performed")
	logSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "Load used")
	logSetCmd.Flags().StringVarP(&setNotes, "notes", "n", "", "Notes for the set")
	logSetCmd.MarkFlagRequired("reps")

	markDayCmd.Flags().StringVarP(&markDate, "date", "d", "", "Date to mark (YYYY-MM-DD)")
	resetCmd.Flags().BoolVar(&resetSure, "yes", false, "Confirm the reset")
}
