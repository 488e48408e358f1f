package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

type resolveRow struct {
	Raw      string `json:"raw"`
	Lang     string `json:"lang"`
	Name     string `json:"name"`
	HostName string `json:"host_name,omitempty"`
}

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "resolve <identifier>...",
		Short: "Print the display name for each location identifier",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			comp, err := ctx.build(cmd.ErrOrStderr(), hostNamesFlag(cmd))
			if err != nil {
				return err
			}
			defer comp.close()

			host := comp.host
			rows := make([]resolveRow, 0, len(args))
			for _, raw := range args {
				row := resolveRow{
					Raw:  raw,
					Lang: host.lang,
					Name: comp.resolver.Resolve(raw, host.lang, host),
				}
				if name, ok := comp.resolver.HostName(raw); ok {
					row.HostName = name
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{displayRaw(r.Raw), r.Lang, r.Name})
			}
			fmt.Fprintln(out, renderTable([]string{"Identifier", "Language", "Display Name"}, table, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, flagJSON, false, "Output JSON")
	return cmd
}

func displayRaw(raw string) string {
	if raw == "" {
		return `""`
	}
	return raw
}
