package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/locdisplay"
	"github.com/ZaguanLabs/locdisplay/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and edit translation catalogs",
	}
	cmd.AddCommand(newCatalogDiffCommand(ctx))
	cmd.AddCommand(newCatalogImportCommand(ctx))
	return cmd
}

func newCatalogDiffCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "diff [lang]",
		Short: "Compare a language catalog against default.json",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.catalog()
			if err != nil {
				return err
			}

			lang := ctx.language()
			if len(args) == 1 {
				lang = locdisplay.NormalizeLanguage(args[0])
			}
			if lang == locdisplay.DefaultLanguage {
				return fmt.Errorf("a target language is required (argument or --%s)", flagLang)
			}

			base := cat.Entries(locdisplay.DefaultLanguage)
			diff := cat.DiffLanguage(lang)
			stats := diff.Stats(base)
			out := cmd.OutOrStdout()

			if jsonOut {
				type diffOutput struct {
					Lang         string   `json:"lang"`
					Missing      []string `json:"missing"`
					Extra        []string `json:"extra"`
					Untranslated []string `json:"untranslated"`
					Translated   int      `json:"translated"`
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(diffOutput{
					Lang:         lang,
					Missing:      diff.Missing,
					Extra:        diff.Extra,
					Untranslated: diff.Untranslated,
					Translated:   stats.Translated,
				})
			}

			fmt.Fprintf(out, "Catalog %s (%s) vs default\n", lang, locdisplay.LanguageName(lang))
			fmt.Fprintln(out, renderTable(
				[]string{"Translated", "Missing", "Untranslated", "Extra"},
				[][]string{{
					strconv.Itoa(stats.Translated),
					strconv.Itoa(stats.Missing),
					strconv.Itoa(stats.Untranslated),
					strconv.Itoa(stats.Extra),
				}},
				[]columnAlignment{alignRight, alignRight, alignRight, alignRight},
			))

			if !diff.HasChanges() {
				fmt.Fprintln(out, "No changes detected. All translations are up to date.")
				return nil
			}

			var rows [][]string
			for _, k := range diff.Missing {
				rows = append(rows, []string{"missing", k, base[k]})
			}
			for _, k := range diff.Untranslated {
				rows = append(rows, []string{"untranslated", k, base[k]})
			}
			for _, k := range diff.Extra {
				rows = append(rows, []string{"extra", k, ""})
			}
			fmt.Fprintln(out, renderTable([]string{"Status", "Key", "Default text"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, flagJSON, false, "Output JSON")
	return cmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-html <lang> <file>",
		Short: "Merge a two-column HTML table (key, text) into <i18n>/<lang>.json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang := locdisplay.NormalizeLanguage(args[0])

			f, err := os.Open(args[1]) // #nosec G304 - CLI tool reads user-specified files
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}
			defer f.Close()

			cat, err := ctx.catalog()
			if err != nil {
				return err
			}
			n, err := cat.ImportHTML(lang, f)
			if err != nil {
				return err
			}

			path := filepath.Join(ctx.v.GetString(flagI18n), lang+".json")
			if err := catalog.WriteFile(path, cat.Entries(lang)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries into %s\n", n, path)
			return nil
		},
	}
}
