package main

import (
	"errors"
	"fmt"
	"strings"

	"mufasa/fitness-brain/internal/domain"
	"mufasa/fitness-brain/internal/service"

	"github.com/spf13/cobra"
)

var newProfile domain.Profile

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := current.profileService.GetProfile(cmd.Context(), userID)
		if errors.Is(err, service.ErrProfileNotFound) {
			fmt.Println("No profile yet. Create one with `coach profile set`.")
			return nil
		}
		if err != nil {
			return err
		}
		printBoxedHeader("PROFILE")
		printMetric("Name", p.Name)
		printMetric("Goal", p.Goal)
		printMetric("Days/week", p.DaysPerWeek)
		if len(p.Injuries) > 0 {
			printMetric("Injuries", strings.Join(p.Injuries, ", "))
		}
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or replace the user's profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		newProfile.UserID = userID
		p, err := current.profileService.SaveProfile(cmd.Context(), &newProfile)
		if errors.Is(err, service.ErrValidationFailed) {
			return errors.New("invalid profile: days per week must be between 0 and 7")
		}
		if err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		fmt.Printf("✅ Saved profile for %s\n", p.UserID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)

	profileSetCmd.Flags().StringVar(&newProfile.Name, "name", "", "Display name")
	profileSetCmd.Flags().StringVar(&newProfile.Goal, "goal", "", "Training goal")
	profileSetCmd.Flags().StringArrayVar(&newProfile.Injuries, "injury", nil, "Injury or limitation (repeatable)")
	profileSetCmd.Flags().IntVar(&newProfile.DaysPerWeek, "days", 0, "Training days per week")
}
