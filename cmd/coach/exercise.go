package main

import (
	"errors"
	"fmt"
	"strings"

	"mufasa/fitness-brain/internal/catalog"
	"mufasa/fitness-brain/internal/service"

	"github.com/spf13/cobra"
)

var (
	facets      catalog.Facets
	searchLimit int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the exercise catalog by name and facets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		results := current.exerciseService.Search(query, facets)
		if len(results) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}
		for i, ex := range results {
			if searchLimit > 0 && i == searchLimit {
				fmt.Println(mutedStyle.Sprintf("... %d more", len(results)-searchLimit))
				break
			}
			fmt.Printf("  %s %s\n", labelStyle.Sprint(ex.Name), mutedStyle.Sprintf("[%s] %s · %s", ex.ID, ex.Equipment, strings.Join(ex.PrimaryMuscles, ", ")))
		}
		return nil
	},
}

var exerciseCmd = &cobra.Command{
	Use:   "exercise <id>",
	Short: "Show an exercise with its instructions and images",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := current.exerciseService.GetExercise(args[0])
		if errors.Is(err, service.ErrExerciseNotFound) {
			return fmt.Errorf("exercise %q not found", args[0])
		}
		if err != nil {
			return err
		}
		printBoxedHeader(ex.Name)
		printMetric("Category", ex.Category)
		printMetric("Equipment", ex.Equipment)
		printMetric("Level", ex.Level)
		printMetric("Primary", strings.Join(ex.PrimaryMuscles, ", "))
		if len(ex.SecondaryMuscles) > 0 {
			printMetric("Secondary", strings.Join(ex.SecondaryMuscles, ", "))
		}
		fmt.Println()
		for i, step := range ex.Instructions {
			fmt.Printf("  %d. %s\n", i+1, step)
		}

		urls, err := current.exerciseService.ImageURLs(cmd.Context(), ex.ID)
		if err != nil {
			return fmt.Errorf("failed to resolve images: %w", err)
		}
		if len(urls) > 0 {
			fmt.Println()
			for _, u := range urls {
				fmt.Println("  " + mutedStyle.Sprint(u))
			}
		}
		return nil
	},
}

var importCatalogCmd = &cobra.Command{
	Use:   "import-catalog <file>",
	Short: "Load an exercise index file and publish it to the configured stores",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := current.exerciseService.ImportCatalog(cmd.Context(), catalog.FileSource{Path: args[0]})
		if n == 0 && err != nil {
			return fmt.Errorf("failed to import catalog: %w", err)
		}
		fmt.Printf("✅ Imported %d exercises\n", n)
		if err != nil {
			return fmt.Errorf("catalog loaded but not published: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd, exerciseCmd, importCatalogCmd)

	searchCmd.Flags().StringVar(&facets.Category, "category", "", "Category, e.g. strength")
	searchCmd.Flags().StringVar(&facets.Equipment, "equipment", "", "Equipment, e.g. dumbbell")
	searchCmd.Flags().StringVar(&facets.Muscle, "muscle", "", "Primary or secondary muscle")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 25, "Maximum results to print (0 for all)")
}
