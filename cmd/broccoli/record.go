// ABOUTME: CLI commands for logging and managing exercise records (sets).
// ABOUTME: Supports add, today, show, edit, and delete subcommands.
package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/forms"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/spf13/cobra"
)

var (
	recordDate     string
	recordExercise int
	recordWeight   float64
	recordRep      int
)

var recordCmd = &cobra.Command{
	Use:     "record",
	Aliases: []string{"r", "set"},
	Short:   "Log and manage sets",
	Long: `A record is one logged set: weight x reps for an exercise on a date.

WORKFLOW:

  1. Pick an exercise:   broccoli exercise list --category 1
  2. Log a set:          broccoli record add 4 100 5
  3. Review the day:     broccoli record today

COMMANDS:

  add      Log a set (today unless --date is given)
  today    List the sets logged on a day
  show     Show one set
  edit     Change a logged set
  delete   Delete a logged set`,
}

var recordAddCmd = &cobra.Command{
	Use:   "add <exercise-id> <weight> <reps>",
	Short: "Log a set",
	Long: `Log a set for an exercise.

Examples:
  broccoli record add 4 100 5
  broccoli record add 4 0 12 --date 2025-02-01   # bodyweight`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		exerciseID, err := parseID(args[0])
		if err != nil {
			return err
		}
		weight, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[1])
		}
		rep, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid reps: %s", args[2])
		}

		form := forms.NewRecordForm()
		form = forms.ReduceRecord(form, forms.SelectExercise{ExerciseID: exerciseID})
		form = forms.ReduceRecord(form, forms.SetWeight{Weight: weight})
		form = forms.ReduceRecord(form, forms.SetRep{Rep: rep})
		form = forms.ReduceRecord(form, forms.SetDate{Date: recordDate})

		r, err := svc.LogRecord(cmd.Context(), form)
		if err != nil {
			if forms.IsValidation(err) {
				return err
			}
			return fail("Failed to save record", err)
		}

		notifier.Success(fmt.Sprintf("Logged %s", r.Exercise.Name))
		printRecord(cmd.OutOrStdout(), *r)
		return nil
	},
}

var recordTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "List the sets logged on a day",
	Long: `List the sets logged today, or on --date.

Examples:
  broccoli record today
  broccoli record today --date 2025-02-01`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day := time.Now()
		if recordDate != "" {
			d, err := models.ParseDate(recordDate)
			if err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", recordDate)
			}
			day = d
		}

		records, err := svc.TodayRecords(cmd.Context(), day)
		if err != nil {
			return fail("Failed to load records", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintf(out, "No sets logged on %s.\n", models.FormatDate(day))
			return nil
		}

		var volume float64
		for _, r := range records {
			printRecord(out, r)
			volume += r.Volume()
		}
		fmt.Fprintf(out, "\n%d sets, volume %g\n", len(records), volume)
		return nil
	},
}

var recordShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		r, err := svc.Backend().GetRecord(cmd.Context(), id)
		if err != nil {
			return fail("Failed to load record", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Record: %d\n", r.ID)
		fmt.Fprintf(out, "Date: %s\n", r.DateKey())
		fmt.Fprintf(out, "Exercise: %s (%d)\n", r.Exercise.Name, r.ExerciseID)
		fmt.Fprintf(out, "Category: %s\n", r.Exercise.CategoryName())
		fmt.Fprintf(out, "Weight: %g\n", r.Weight)
		fmt.Fprintf(out, "Reps: %d\n", r.Rep)
		fmt.Fprintf(out, "Volume: %g\n", r.Volume())
		return nil
	},
}

var recordEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a set",
	Long: `Change a logged set. Fields without a flag keep their current value.

Examples:
  broccoli record edit 12 --weight 105
  broccoli record edit 12 --reps 6 --date 2025-02-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		form, err := svc.RecordForm(cmd.Context(), id)
		if err != nil {
			return fail("Failed to load record", err)
		}

		flags := cmd.Flags()
		if flags.Changed("exercise") {
			form = forms.ReduceRecord(form, forms.SelectExercise{ExerciseID: recordExercise})
		}
		if flags.Changed("weight") {
			form = forms.ReduceRecord(form, forms.SetWeight{Weight: recordWeight})
		}
		if flags.Changed("reps") {
			form = forms.ReduceRecord(form, forms.SetRep{Rep: recordRep})
		}
		if flags.Changed("date") {
			form = forms.ReduceRecord(form, forms.SetDate{Date: recordDate})
		}

		r, err := svc.EditRecord(cmd.Context(), id, form)
		if err != nil {
			if forms.IsValidation(err) {
				return err
			}
			return fail("Failed to update record", err)
		}

		notifier.Success(fmt.Sprintf("Updated record %d", r.ID))
		printRecord(cmd.OutOrStdout(), *r)
		return nil
	},
}

var recordDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a set",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := svc.DeleteRecord(cmd.Context(), id, notifier)
		if err != nil {
			return fail("Failed to delete record", err)
		}
		if !deleted {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		notifier.Success(fmt.Sprintf("Deleted record %d", id))
		return nil
	},
}

func printRecord(out io.Writer, r models.ExerciseRecord) {
	faint := color.New(color.Faint)
	fmt.Fprintf(out, "%s %s %s %s %g x %d\n",
		faint.Sprint(padRight(strconv.Itoa(r.ID), 5)),
		faint.Sprint(r.DateKey()),
		padRight(truncate(r.Exercise.Name, 24), 24),
		faint.Sprint(padRight(truncate(r.Exercise.CategoryName(), 12), 12)),
		r.Weight, r.Rep)
}

func init() {
	recordAddCmd.Flags().StringVarP(&recordDate, "date", "d", "", "date (YYYY-MM-DD), default today")
	recordTodayCmd.Flags().StringVarP(&recordDate, "date", "d", "", "date (YYYY-MM-DD), default today")
	recordEditCmd.Flags().StringVarP(&recordDate, "date", "d", "", "new date (YYYY-MM-DD)")
	recordEditCmd.Flags().IntVarP(&recordExercise, "exercise", "e", 0, "new exercise id")
	recordEditCmd.Flags().Float64VarP(&recordWeight, "weight", "w", 0, "new weight")
	recordEditCmd.Flags().IntVarP(&recordRep, "reps", "r", 0, "new rep count")

	recordCmd.AddCommand(recordAddCmd)
	recordCmd.AddCommand(recordTodayCmd)
	recordCmd.AddCommand(recordShowCmd)
	recordCmd.AddCommand(recordEditCmd)
	recordCmd.AddCommand(recordDeleteCmd)
	rootCmd.AddCommand(recordCmd)
}
