package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/locdisplay"
	"github.com/ZaguanLabs/locdisplay/cache"
)

// sessionMarker in a replay file starts a new game session.
const sessionMarker = "!session"

func newSimulateCommand(ctx *commandContext) *cobra.Command {
	var (
		cacheExport string
		cacheImport string
	)

	cmd := &cobra.Command{
		Use:   "simulate [file]",
		Short: "Replay location changes, one identifier per line, through the notification controller",
		Long: `Replay location changes through the notification controller.

Each input line is one raw location identifier. Blank lines stand for an
empty identifier, lines starting with '#' are comments and a line reading
"!session" starts a new game session. Input is read from stdin when no file
is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0]) // #nosec G304 - CLI tool reads user-specified files
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				defer f.Close()
				in = f
			}

			comp, err := ctx.build(cmd.ErrOrStderr(), hostNamesFlag(cmd))
			if err != nil {
				return err
			}
			defer comp.close()

			if cacheImport != "" {
				result, err := cache.NewImporter(comp.cache).ImportFromFile(cacheImport)
				if err != nil {
					return fmt.Errorf("importing cache: %w", err)
				}
				comp.logger.WithField("imported", result.Imported).Info("cache warmed")
			}

			out := cmd.OutOrStdout()
			controller := locdisplay.NewController(comp.resolver, comp.host, newConsoleNotifier(out), comp.cfg,
				locdisplay.WithControllerLogger(comp.logger))

			rows, err := replay(in, controller, comp.host)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Identifier", "Outcome", "Showing"}, rows, []columnAlignment{alignRight}))

			if cacheExport != "" {
				meta := map[string]string{"lang": comp.host.lang}
				if err := cache.NewExporter(comp.cache).ExportToFile(cacheExport, meta); err != nil {
					return fmt.Errorf("exporting cache: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cacheExport, "cache-export", "", "Write the translation cache to this file afterwards")
	cmd.Flags().StringVar(&cacheImport, "cache-import", "", "Warm the translation cache from this file first")
	return cmd
}

// replay feeds every line of in to the controller and returns one table row
// per event.
func replay(in io.Reader, controller *locdisplay.Controller, host *cliHost) ([][]string, error) {
	var rows [][]string

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		n := fmt.Sprintf("%d", len(rows)+1)
		if line == sessionMarker {
			controller.OnSessionStart()
			rows = append(rows, []string{n, sessionMarker, "session", ""})
			continue
		}

		host.location = line
		outcome := controller.OnLocationChanged(line)
		showing, _ := controller.LastShown()
		rows = append(rows, []string{n, displayRaw(line), outcome.String(), showing})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return rows, nil
}
