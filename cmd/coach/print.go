package main

import (
	"fmt"
	"os"
	"strings"

	"mufasa/fitness-brain/internal/domain"

	"github.com/fatih/color"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	labelStyle   = color.New(color.FgYellow, color.Bold)
	okStyle      = color.New(color.FgGreen, color.Bold)
	mutedStyle   = color.New(color.FgHiBlack)
	errorStyle   = color.New(color.FgRed, color.Bold)
	slotStyle    = color.New(color.FgMagenta, color.Bold)
	boxWidth     = 40
	statusColors = map[domain.SessionStatus]*color.Color{
		domain.StatusPlanned:    color.New(color.FgBlue),
		domain.StatusInProgress: color.New(color.FgYellow),
		domain.StatusCompleted:  color.New(color.FgGreen),
	}
)

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func printBoxedHeader(title string) {
	border := strings.Repeat("═", boxWidth)
	headerStyle.Println("╔" + border + "╗")
	headerStyle.Println("║" + centerText(title, boxWidth) + "║")
	headerStyle.Println("╚" + border + "╝")
}

func centerText(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + s + strings.Repeat(" ", width-n-padding)
}

// printMetric prints a label and value using bold yellow for the label.
func printMetric(label string, value any) {
	fmt.Printf("  %s: %v\n", labelStyle.Sprint(label), value)
}

func statusText(s domain.SessionStatus) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

// printEntry shows a scheduled day with its summary card.
func printEntry(e domain.ScheduleEntry, done bool) {
	mark := mutedStyle.Sprint("○")
	if done {
		mark = okStyle.Sprint("✓")
	}
	fmt.Printf("%s %s  %s\n", mark, labelStyle.Sprint(domain.DateKey(e.Date)), mutedStyle.Sprintf("Week %d · Day %d", e.Week, e.DayIndex))
	for _, line := range strings.Split(e.Summary, "\n") {
		fmt.Println("    " + strings.ReplaceAll(line, "**", ""))
	}
}

// printSession shows the blocks of a workout and where coaching stands.
func printSession(s *domain.WorkoutSession) {
	printBoxedHeader("WORKOUT " + domain.DateKey(s.Date))
	printMetric("Session", s.ID)
	printMetric("Status", statusText(s.Status))
	if s.CompletedAt != nil {
		printMetric("Completed", s.CompletedAt.Local().Format("2006-01-02 15:04"))
	}
	if !s.IsCompleted() && s.Current.Slot != "" && !s.AllSetsLogged() {
		printMetric("Next", fmt.Sprintf("%s set %d", s.Current.Slot, s.Current.SetIndex))
	}
	fmt.Println()

	printDrills("Warm-up", s.Blocks.Warmup)
	printDrills("Corrective", s.Blocks.Corrective)
	printSlots("Strength", s.Blocks.Strength, s.Current)
	printSlots("Finisher", s.Blocks.Finisher, s.Current)
}

func printDrills(title string, drills []domain.Drill) {
	if len(drills) == 0 {
		return
	}
	headerStyle.Println(title)
	for _, d := range drills {
		fmt.Printf("  • %s %s\n", d.Name, mutedStyle.Sprintf("%dx%s", d.Sets, d.Reps))
	}
	fmt.Println()
}

func printSlots(title string, slots []domain.Slot, current domain.Pointer) {
	if len(slots) == 0 {
		return
	}
	headerStyle.Println(title)
	for _, sl := range slots {
		marker := "  "
		if sl.Slot == current.Slot {
			marker = okStyle.Sprint("▶ ")
		}
		fmt.Printf("%s%s %s %s\n", marker, slotStyle.Sprint(sl.Slot), sl.Name,
			mutedStyle.Sprintf("%dx%s · rest %ds · %d/%d sets", sl.Sets, sl.Reps, sl.RestSec, len(sl.Performed), sl.Sets))
		if sl.Cue != "" {
			fmt.Printf("     %s\n", mutedStyle.Sprint(sl.Cue))
		}
	}
	fmt.Println()
}
