package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/locdisplay"
)

func newDescribeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "describe [identifier]",
		Short: "Show how the current location resolves (the in-game debug key)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := ctx.build(cmd.ErrOrStderr(), hostNamesFlag(cmd))
			if err != nil {
				return err
			}
			defer comp.close()

			if len(args) == 1 {
				comp.host.location = args[0]
			}

			controller := locdisplay.NewController(comp.resolver, comp.host, newConsoleNotifier(cmd.ErrOrStderr()), comp.cfg,
				locdisplay.WithControllerLogger(comp.logger))
			report := controller.DescribeCurrentLocation()

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			if report.Raw == "" {
				fmt.Fprintln(out, "No current location available.")
				return nil
			}
			rows := [][]string{
				{"Raw name", report.Raw},
				{"Host display name", report.HostDisplayName},
				{"Resolved name", report.ResolvedName},
				{"Language", locdisplay.LanguageName(comp.host.lang)},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, flagJSON, false, "Output JSON")
	return cmd
}
