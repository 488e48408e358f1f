package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/locdisplay/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}
	cmd.AddCommand(newConfigInitCommand(ctx))
	cmd.AddCommand(newConfigShowCommand(ctx))
	cmd.AddCommand(newConfigResetCommand(ctx))
	return cmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a settings file with the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ctx.configPath()
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("checking %s: %w", path, err)
				}
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default settings to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.settings()
			if err != nil {
				return err
			}

			var rows [][]string
			for _, opt := range config.Options() {
				value, err := cfg.Value(opt.Key)
				if err != nil {
					return err
				}
				rng := ""
				if opt.Kind == config.KindNumber {
					rng = fmt.Sprintf("%g..%g step %g", opt.Min, opt.Max, opt.Step)
				}
				rows = append(rows, []string{opt.Name, value, rng, opt.Tooltip})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", config.Section, ctx.configPath())
			fmt.Fprintln(out, renderTable([]string{"Setting", "Value", "Range", "Description"}, rows, nil))
			if clamped := cfg.Clamp(); clamped != cfg {
				fmt.Fprintf(out, "Note: NotificationDuration %d is outside the menu range; the menu would show %d.\n",
					cfg.NotificationDuration, clamped.NotificationDuration)
			}
			return nil
		},
	}
}

func newConfigResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore every setting to its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.settings()
			if err != nil {
				cmd.PrintErrf("ignoring unreadable settings: %v\n", err)
			}
			cfg.Reset()
			if err := config.Save(ctx.configPath(), cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset settings in %s\n", ctx.configPath())
			return nil
		},
	}
}
