// ABOUTME: CLI commands for managing exercises.
// ABOUTME: Supports list, add, edit, and delete subcommands; each exercise has one category.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/forms"
	"github.com/spf13/cobra"
)

var (
	exerciseCategory int
	exerciseName     string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex", "e"},
	Short:   "Manage exercises",
	Long: `Exercises are named movements that belong to exactly one category.

COMMANDS:

  list     List exercises (--category to filter)
  add      Create an exercise in a category
  edit     Rename an exercise or move it to another category
  delete   Delete an exercise`,
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		exercises, err := svc.ExerciseOptions(cmd.Context(), exerciseCategory)
		if err != nil {
			return fail("Failed to load exercises", err)
		}

		out := cmd.OutOrStdout()
		if len(exercises) == 0 {
			fmt.Fprintln(out, "No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Fprintf(out, "%s %s %s\n",
				faint.Sprint(padRight(strconv.Itoa(e.ID), 5)),
				padRight(truncate(e.Name, 28), 28),
				faint.Sprint(e.CategoryName()))
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add an exercise",
	Long: `Add an exercise to a category.

Examples:
  broccoli exercise add Squat --category 1
  broccoli exercise add "Romanian deadlift" -c 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.ExerciseForm{}
		form = forms.ReduceExercise(form, forms.SetExerciseName{Name: args[0]})
		form = forms.ReduceExercise(form, forms.SetExerciseCategory{CategoryID: exerciseCategory})

		e, err := svc.AddExercise(cmd.Context(), form)
		if err != nil {
			if forms.IsValidation(err) {
				return err
			}
			return fail("Failed to add exercise", err)
		}

		notifier.Success(fmt.Sprintf("Added exercise %s", e.Name))
		fmt.Fprintf(cmd.OutOrStdout(), "  ID: %d\n", e.ID)
		return nil
	},
}

var exerciseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an exercise",
	Long: `Rename an exercise or move it to another category.
Fields without a flag keep their current value.

Examples:
  broccoli exercise edit 4 --name "Back squat"
  broccoli exercise edit 4 --category 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		current, err := svc.Backend().GetExercise(cmd.Context(), id)
		if err != nil {
			return fail("Failed to load exercise", err)
		}

		form := forms.ExerciseForm{Name: current.Name, CategoryID: current.CategoryID}
		if cmd.Flags().Changed("name") {
			form = forms.ReduceExercise(form, forms.SetExerciseName{Name: exerciseName})
		}
		if cmd.Flags().Changed("category") {
			form = forms.ReduceExercise(form, forms.SetExerciseCategory{CategoryID: exerciseCategory})
		}

		e, err := svc.EditExercise(cmd.Context(), id, form)
		if err != nil {
			if forms.IsValidation(err) {
				return err
			}
			return fail("Failed to update exercise", err)
		}

		notifier.Success(fmt.Sprintf("Updated exercise %s", e.Name))
		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := svc.DeleteExercise(cmd.Context(), id, notifier)
		if err != nil {
			return fail("Failed to delete exercise", err)
		}
		if !deleted {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		notifier.Success(fmt.Sprintf("Deleted exercise %d", id))
		return nil
	},
}

func init() {
	exerciseListCmd.Flags().IntVarP(&exerciseCategory, "category", "c", 0, "filter by category id")
	exerciseAddCmd.Flags().IntVarP(&exerciseCategory, "category", "c", 0, "category id (required)")
	exerciseEditCmd.Flags().IntVarP(&exerciseCategory, "category", "c", 0, "new category id")
	exerciseEditCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "new name")

	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseEditCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
