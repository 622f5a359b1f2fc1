// ABOUTME: CLI commands for managing exercise categories.
// ABOUTME: Supports list, add, edit, and delete subcommands.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/forms"
	"github.com/harperreed/broccoli/internal/models"
	"github.com/spf13/cobra"
)

var categoryAssigned bool

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat", "c"},
	Short:   "Manage exercise categories",
	Long: `Categories group exercises (legs, back, chest, cardio, ...).

COMMANDS:

  list     List categories (--assigned for those with exercises)
  add      Create a category
  edit     Rename a category
  delete   Delete a category

Names are required and at most 64 characters.`,
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			categories []models.Category
			err        error
		)
		if categoryAssigned {
			categories, err = svc.WorkoutOptions(cmd.Context())
		} else {
			categories, err = svc.Categories(cmd.Context())
		}
		if err != nil {
			return fail("Failed to load categories", err)
		}

		out := cmd.OutOrStdout()
		if len(categories) == 0 {
			fmt.Fprintln(out, "No categories found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, c := range categories {
			fmt.Fprintf(out, "%s %s\n", faint.Sprint(padRight(strconv.Itoa(c.ID), 5)), c.Name)
		}
		return nil
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Long: `Add an exercise category.

Examples:
  broccoli category add Legs
  broccoli category add "Upper body"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		form := forms.ReduceCategory(forms.CategoryForm{}, forms.SetCategoryName{Name: args[0]})
		c, err := svc.AddCategory(cmd.Context(), form)
		if err != nil {
			if forms.IsValidation(err) {
				return err
			}
			return fail("Failed to add category", err)
		}

		notifier.Success(fmt.Sprintf("Added category %s", c.Name))
		fmt.Fprintf(cmd.OutOrStdout(), "  ID: %d\n", c.ID)
		return nil
	},
}

var categoryEditCmd = &cobra.Command{
	Use:   "edit <id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		form := forms.ReduceCategory(forms.CategoryForm{}, forms.SetCategoryName{Name: args[1]})
		c, err := svc.RenameCategory(cmd.Context(), id, form)
		if err != nil {
			if forms.IsValidation(err) {
				return err
			}
			return fail("Failed to update category", err)
		}

		notifier.Success(fmt.Sprintf("Renamed category %d to %s", c.ID, c.Name))
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a category",
	Long: `Delete a category by id. Asks for confirmation unless --yes is given.

CAUTION:

  This permanently deletes the category on the backend. There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		deleted, err := svc.DeleteCategory(cmd.Context(), id, notifier)
		if err != nil {
			return fail("Failed to delete category", err)
		}
		if !deleted {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		notifier.Success(fmt.Sprintf("Deleted category %d", id))
		return nil
	},
}

func init() {
	categoryListCmd.Flags().BoolVar(&categoryAssigned, "assigned", false, "only categories that have exercises")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryEditCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
	rootCmd.AddCommand(categoryCmd)
}
