package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaultfile/vault/internal/config"
	"github.com/vaultfile/vault/internal/container"
	"github.com/vaultfile/vault/internal/vault"
)

func newRmCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <file>",
		Short: "Delete a file from the vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, ext, err := splitFileArg(args[0])
			if err != nil {
				return err
			}

			path := config.ContainerPath(vaultPath)
			store, err := loadContainer(path)
			if err != nil {
				return err
			}

			if !force {
				fmt.Fprintf(cmd.ErrOrStderr(), "Delete %s.%s from the vault? (y/N) ", name, ext)

				reader := bufio.NewReader(cmd.InOrStdin())
				answer, err := reader.ReadString('\n')
				if err != nil {
					return err
				}

				answer = strings.TrimSpace(strings.ToLower(answer))
				if answer != "y" {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled")
					return nil
				}
			}

			if err := store.Delete(name, ext); err != nil {
				if errors.Is(err, vault.ErrNotFound) {
					return fmt.Errorf("%s.%s does not exist inside the vault", name, ext)
				}
				return err
			}

			if err := container.Save(store, path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s.%s\n", name, ext)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
