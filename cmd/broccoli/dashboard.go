// ABOUTME: CLI command printing the dashboard.
// ABOUTME: Shows workout-day counts, last 7 days activity, and per-category totals.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/calendar"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"dash", "d"},
	Short:   "Show workout statistics",
	Long: `Show workout statistics.

  Total days    distinct days with at least one set
  This month    workout days in the current calendar month
  This week     workout days in the current Sunday-start week
  Last 7 days   sets per day, oldest first
  By category   sets per category

With 'broccoli prefs set expanded false' only the counts are shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := svc.Dashboard(cmd.Context(), time.Now())
		if err != nil {
			return fail("Failed to load dashboard", err)
		}

		out := cmd.OutOrStdout()
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		st := summary.Stats
		fmt.Fprintf(out, "%s %d\n", padRight("Total days", 14), st.TotalDays)
		fmt.Fprintf(out, "%s %d\n", padRight("This month", 14), st.MonthDays)
		fmt.Fprintf(out, "%s %d\n", padRight("This week", 14), st.WeekDays)
		fmt.Fprintf(out, "%s %d", padRight("Sets", 14), st.TotalRecords)
		if st.ServerRecords > 0 {
			fmt.Fprint(out, faint.Sprintf("  (%d on server)", st.ServerRecords))
		}
		fmt.Fprintln(out)

		if !userPrefs.Expanded {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, bold.Sprint("Last 7 days"))
		for _, d := range summary.Last7Days {
			level := calendar.IntensityFor(d.Count)
			bar := strings.Repeat(intensityGlyphs[calendar.Max], min(d.Count, 30))
			fmt.Fprintf(out, "%s %s %s\n",
				faint.Sprint(d.Date),
				padRight(fmt.Sprintf("%d", d.Count), 4),
				intensityColors[level].Sprint(bar))
		}

		if len(summary.PerCategory) > 0 {
			fmt.Fprintln(out)
			fmt.Fprintln(out, bold.Sprint("By category"))
			for _, c := range summary.PerCategory {
				fmt.Fprintf(out, "%s %d\n", padRight(truncate(c.Name, 20), 20), c.Count)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
