// ABOUTME: CLI commands for local display preferences.
// ABOUTME: Supports get, set, list, and unset on the badger-backed preference store.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/broccoli/internal/prefs"
	"github.com/spf13/cobra"
)

var errPrefsUnavailable = errors.New("preference store unavailable (is another broccoli process running?)")

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage display preferences",
	Long: `Display preferences are stored locally and never sent to the backend.

KEYS:

  theme           auto, color, or plain (default auto)
  expanded        true shows every dashboard section, false only the counts (default true)
  calendar_view   week, month, or year (default month)

EXAMPLES:

  broccoli prefs list
  broccoli prefs set theme plain
  broccoli prefs unset theme`,
}

var prefsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List preferences",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if prefStore == nil {
			return errPrefsUnavailable
		}
		p, err := prefStore.Load()
		if err != nil {
			return err
		}
		stored, err := prefStore.Keys()
		if err != nil {
			return err
		}
		isSet := make(map[string]bool, len(stored))
		for _, k := range stored {
			isSet[k] = true
		}

		out := cmd.OutOrStdout()
		faint := color.New(color.Faint)
		rows := []struct{ key, value string }{
			{prefs.KeyTheme, string(p.Theme)},
			{prefs.KeyExpanded, fmt.Sprintf("%t", p.Expanded)},
			{prefs.KeyCalendarView, p.CalendarView},
		}
		for _, r := range rows {
			line := fmt.Sprintf("%s %s", padRight(r.key, 14), r.value)
			if !isSet[r.key] {
				line += faint.Sprint(" (default)")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if prefStore == nil {
			return errPrefsUnavailable
		}
		key := args[0]
		v, ok, err := prefStore.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			d := prefs.Defaults()
			switch key {
			case prefs.KeyTheme:
				v = string(d.Theme)
			case prefs.KeyExpanded:
				v = fmt.Sprintf("%t", d.Expanded)
			case prefs.KeyCalendarView:
				v = d.CalendarView
			default:
				return fmt.Errorf("unknown preference %q", key)
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if prefStore == nil {
			return errPrefsUnavailable
		}
		if err := prefStore.Set(args[0], args[1]); err != nil {
			return err
		}
		notifier.Success(fmt.Sprintf("Set %s = %s", args[0], args[1]))
		return nil
	},
}

var prefsUnsetCmd = &cobra.Command{
	Use:     "unset <key>",
	Aliases: []string{"rm"},
	Short:   "Reset a preference to its default",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if prefStore == nil {
			return errPrefsUnavailable
		}
		if err := prefStore.Delete(args[0]); err != nil {
			return err
		}
		notifier.Success(fmt.Sprintf("Reset %s", args[0]))
		return nil
	},
}

func init() {
	prefsCmd.AddCommand(prefsListCmd)
	prefsCmd.AddCommand(prefsGetCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsUnsetCmd)
	rootCmd.AddCommand(prefsCmd)
}
