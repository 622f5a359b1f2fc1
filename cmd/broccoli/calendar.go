// ABOUTME: CLI command rendering the workout calendar heat-map.
// ABOUTME: Week and month views print a day grid; the year view prints one row per month.
package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/calendar"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/spf13/cobra"
)

var (
	calendarView   string
	calendarDate   string
	calendarOffset int
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show the workout heat-map",
	Long: `Show how many sets were logged per day as a heat-map.

VIEWS:

  week    the Sunday-start week containing --date
  month   the month containing --date, padded to whole weeks (default)
  year    every month of the year, one row each

The default view comes from the calendar_view preference
(broccoli prefs set calendar_view week).

INTENSITY:

  ·  none    ░  1-3 sets    ▒  4-6    ▓  7-9    █  10+

EXAMPLES:

  broccoli calendar
  broccoli calendar --view week --date 2025-02-03
  broccoli calendar --offset -1          # previous month`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		viewName := calendarView
		if viewName == "" {
			viewName = userPrefs.CalendarView
		}
		view, err := calendar.ParseView(viewName)
		if err != nil {
			return err
		}

		now := time.Now()
		ref := now
		if calendarDate != "" {
			d, err := models.ParseDate(calendarDate)
			if err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", calendarDate)
			}
			ref = d
		}

		nav := calendar.NewNavigator(view, ref)
		if err := nav.Shift(calendarOffset); err != nil {
			return err
		}

		res, err := svc.Calendar(cmd.Context(), nav, now)
		if err != nil {
			return fail("Failed to load calendar", err)
		}

		renderCalendar(cmd.OutOrStdout(), res)
		return nil
	},
}

var intensityGlyphs = map[calendar.Intensity]string{
	calendar.None:   "·",
	calendar.Low:    "░",
	calendar.Medium: "▒",
	calendar.High:   "▓",
	calendar.Max:    "█",
}

var intensityColors = map[calendar.Intensity]*color.Color{
	calendar.None:   color.New(color.Faint),
	calendar.Low:    color.New(color.FgGreen),
	calendar.Medium: color.New(color.FgHiGreen),
	calendar.High:   color.New(color.FgHiGreen, color.Bold),
	calendar.Max:    color.New(color.FgHiYellow, color.Bold),
}

func renderCalendar(out io.Writer, res calendar.Result) {
	fmt.Fprintln(out, color.New(color.Bold).Sprint(res.Title))

	if res.View == calendar.Year {
		renderYear(out, res)
		return
	}

	fmt.Fprintln(out, color.New(color.Faint).Sprint(" Su  Mo  Tu  We  Th  Fr  Sa"))
	active, sets := 0, 0
	for i, b := range res.Buckets {
		fmt.Fprint(out, dayCell(b))
		if i%7 == 6 {
			fmt.Fprintln(out)
		}
		if b.InRange && b.Count() > 0 {
			active++
			sets += b.Count()
		}
	}
	fmt.Fprintf(out, "\n%d workout days, %d sets\n", active, sets)
}

func dayCell(b calendar.Bucket) string {
	day := strings.TrimPrefix(b.Date[len(b.Date)-2:], "0")
	cell := fmt.Sprintf(" %2s%s", day, intensityGlyphs[b.Intensity()])
	switch {
	case !b.InRange:
		return color.New(color.Faint).Sprint(cell)
	case b.IsToday:
		return color.New(color.Underline).Sprint(cell)
	default:
		return intensityColors[b.Intensity()].Sprint(cell)
	}
}

func renderYear(out io.Writer, res calendar.Result) {
	active, sets := 0, 0
	for _, m := range res.Months {
		var row strings.Builder
		monthSets := 0
		for _, b := range m.Buckets {
			row.WriteString(intensityColors[b.Intensity()].Sprint(intensityGlyphs[b.Intensity()]))
			if b.Count() > 0 {
				active++
				monthSets += b.Count()
			}
		}
		sets += monthSets
		fmt.Fprintf(out, "%s %s %s\n",
			m.Month.String()[:3],
			row.String(),
			color.New(color.Faint).Sprintf("%d", monthSets))
	}
	fmt.Fprintf(out, "\n%d workout days, %d sets\n", active, sets)
}

func init() {
	calendarCmd.Flags().StringVar(&calendarView, "view", "", "week, month, or year (default from preferences)")
	calendarCmd.Flags().StringVarP(&calendarDate, "date", "d", "", "any date in the range (YYYY-MM-DD)")
	calendarCmd.Flags().IntVar(&calendarOffset, "offset", 0, "ranges to move forward (positive) or back (negative)")
	rootCmd.AddCommand(calendarCmd)
}
