package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/locdisplay"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", locdisplay.Name, locdisplay.FullVersion())
			if locdisplay.BuildDate != "unknown" && locdisplay.BuildDate != "" {
				fmt.Fprintf(out, "  built:   %s\n", locdisplay.BuildDate)
			}
			fmt.Fprintf(out, "  %s\n", locdisplay.Description)
			return nil
		},
	}
}
