package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultfile/vault/internal/config"
	"github.com/vaultfile/vault/internal/container"
	"github.com/vaultfile/vault/internal/vault"
)

func newAddCmd() *cobra.Command {
	var (
		overwrite bool
		recursive bool
	)

	cmd := &cobra.Command{
		Use:   "add <path>...",
		Short: "Add files to the vault",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ContainerPath(vaultPath)
			store, err := loadContainer(path)
			if err != nil {
				return err
			}

			paths, err := collectFiles(args, recursive)
			if err != nil {
				return err
			}

			// Batch semantics: report each failed item and keep going.
			added := 0
			failed := 0
			for _, p := range paths {
				name, ext, err := splitFileArg(p)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					failed++
					continue
				}

				content, err := os.ReadFile(p)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "error reading %s: %v\n", p, err)
					failed++
					continue
				}

				if err := store.Add(vault.NewRecord(name, ext, content), overwrite); err != nil {
					if errors.Is(err, vault.ErrDuplicateKey) {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s.%s already exists (use --overwrite to replace)\n", name, ext)
					} else {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s.%s: %v\n", name, ext, err)
					}
					failed++
					continue
				}

				slog.Debug("added record", "name", name, "extension", ext, "bytes", len(content))
				fmt.Fprintf(cmd.OutOrStdout(), "added %s.%s to the vault\n", name, ext)
				added++
			}

			if added > 0 {
				if err := container.Save(store, path); err != nil {
					return err
				}
			}
			if added == 0 && failed > 0 {
				return errors.New("no files were added")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing entry with the same name")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Recurse into directories")

	return cmd
}
