// ABOUTME: CLI command for browsing filtered, paginated record history.
// ABOUTME: Filters by category, exercise, and inclusive date range; 100 sets per page.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/history"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyCategory int
	historyExercise int
	historyFrom     string
	historyTo       string
	historyPage     int
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"hist", "h"},
	Short:   "Browse logged sets",
	Long: `Browse logged sets newest first, 100 per page.

FILTERING:

  --category   only sets of exercises in this category
  --exercise   only sets of this exercise
  --from       on or after this date (YYYY-MM-DD)
  --to         on or before this date (YYYY-MM-DD)

Filters combine. A page beyond the last is shown as the last page.

EXAMPLES:

  broccoli history
  broccoli history --category 1 --from 2025-01-01
  broccoli history --exercise 4 --page 2`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range []string{historyFrom, historyTo} {
			if d == "" {
				continue
			}
			if _, err := models.ParseDate(d); err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", d)
			}
		}

		q := history.NewQuery()
		q.SetCategory(historyCategory)
		q.SetExercise(historyExercise)
		q.SetStartDate(historyFrom)
		q.SetEndDate(historyTo)
		q.SetPage(historyPage)

		view, err := svc.History(cmd.Context(), q)
		if err != nil {
			return fail("Failed to load history", err)
		}

		out := cmd.OutOrStdout()
		if view.Filtered == 0 {
			fmt.Fprintln(out, "No sets found.")
			return nil
		}
		for _, r := range view.Records {
			printRecord(out, r)
		}

		faint := color.New(color.Faint)
		summary := fmt.Sprintf("Page %d of %d  (%d of %d sets match",
			view.Page.Page, view.TotalPages, view.Filtered, view.Total)
		if view.ServerRecords > 0 {
			summary += fmt.Sprintf(", %d on server", view.ServerRecords)
		}
		fmt.Fprintln(out, faint.Sprint(summary+")"))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyCategory, "category", "c", 0, "filter by category id")
	historyCmd.Flags().IntVarP(&historyExercise, "exercise", "e", 0, "filter by exercise id")
	historyCmd.Flags().StringVar(&historyFrom, "from", "", "start date inclusive (YYYY-MM-DD)")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "end date inclusive (YYYY-MM-DD)")
	historyCmd.Flags().IntVarP(&historyPage, "page", "p", 1, "page number")
	rootCmd.AddCommand(historyCmd)
}
