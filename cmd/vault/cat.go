package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultfile/vault/internal/config"
	"github.com/vaultfile/vault/internal/vault"
)

func newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print contents of a file in the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ext, err := splitFileArg(args[0])
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

			fmt.Fprintf(cmd.OutOrStdout(), "%s.%s:\n", rec.Name, rec.Extension)
			fmt.Fprintln(cmd.OutOrStdout(), string(rec.Content))
			return nil
		},
	}

	return cmd
}
