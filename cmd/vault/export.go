package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultfile/vault/internal/config"
	"github.com/vaultfile/vault/internal/vault"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a file from the vault to disk",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ext, err := splitFileArg(args[0])
			if err != nil {
				return err
			}

			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			store, err := loadContainer(config.ContainerPath(vaultPath))
			if err != nil {
				return err
			}

			rec, err := store.Get(name, ext)
			if err != nil {
				if errors.Is(err, vault.ErrNotFound) {
					return fmt.Errorf("%s.%s does not exist inside the vault", name, ext)
				}
				return err
			}

			dest := out
			if dest == "" {
				dest = fmt.Sprintf("%s%s.%s", settings.ExportPrefix, rec.Name, rec.Extension)
			}

			if err := os.WriteFile(dest, rec.Content, 0o600); err != nil {
				return fmt.Errorf("error writing %s: %w", dest, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", dest)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Destination path (default <prefix><name>.<ext>)")

	return cmd
}
