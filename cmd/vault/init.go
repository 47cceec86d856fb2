package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vaultfile/vault/internal/config"
	"github.com/vaultfile/vault/internal/container"
	"github.com/vaultfile/vault/internal/vault"
)

const welcomeMessage = "welcome to vault! vault is your private place to store sensitive documents, files, photos, and much more. get started by running `vault help` to see the available commands!"

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a vault in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := config.ContainerPath(vaultPath)
			if container.Exists(path) {
				fmt.Fprintln(cmd.OutOrStdout(), "vault already exists in current directory")
				return nil
			}

			store := vault.NewStore()
			if err := store.Add(vault.NewRecord("hello", "txt", []byte(welcomeMessage)), false); err != nil {
				return err
			}
			if err := container.Save(store, path); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "created a new vault in current directory")
			return nil
		},
	}

	return cmd
}
