package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vaultfile/vault/internal/config"
	"github.com/vaultfile/vault/internal/vault"
)

func newLsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all files in the vault",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}
			if format == "" {
				format = settings.ListFormat
			}

			store, err := loadContainer(config.ContainerPath(vaultPath))
			if err != nil {
				return err
			}

			switch format {
			case "plain":
				outputPlain(cmd, store)
				return nil
			case "table":
				outputTable(cmd, store)
				return nil
			case "json":
				return outputJSON(cmd, store)
			default:
				return fmt.Errorf("invalid format: %s (valid values: plain, table, json)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: plain, table, or json")

	return cmd
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func outputPlain(cmd *cobra.Command, store *vault.Store) {
	records := store.Records()
	fmt.Fprintf(cmd.OutOrStdout(), "%d file%s:\n", len(records), pluralize(len(records)))
	for _, rec := range records {
		fmt.Fprintln(cmd.OutOrStdout(), rec.Describe())
	}
}

type listOutputEntry struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Size      int    `json:"size"`
}

func outputJSON(cmd *cobra.Command, store *vault.Store) error {
	output := []listOutputEntry{}
	for _, rec := range store.Records() {
		output = append(output, listOutputEntry{
			Name:      rec.Name,
			Extension: rec.Extension,
			Size:      len(rec.Content),
		})
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func getTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	// Default width if terminal size cannot be determined
	return 80
}

func outputTable(cmd *cobra.Command, store *vault.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Ext", "Size"})

	// Ext and Size stay narrow; give the name whatever width remains.
	nameWidth := getTerminalWidth() - 28
	if nameWidth < 10 {
		nameWidth = 10
	}

	for _, rec := range store.Records() {
		t.AppendRow(table.Row{
			runewidth.Truncate(rec.Name, nameWidth, "..."),
			rec.Extension,
			fmt.Sprintf("%d B", len(rec.Content)),
		})
	}

	t.Render()
}
