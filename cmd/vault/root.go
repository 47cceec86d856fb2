package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vaultfile/vault/internal/container"
	"github.com/vaultfile/vault/internal/vault"
)

var (
	vaultPath string
	verbose   bool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vault",
		Short:   "vault - a single-file container for your local files",
		Long:    "vault packs files into one container in the current directory.\nDespite the name there is no encryption; it is a packing format, not a safe.",
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
		},
	}

	cmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "Path to the container (default ./vault.vault, or VAULT_PATH)")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newLsCmd())
	cmd.AddCommand(newCatCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newRmCmd())

	return cmd
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)
}

// loadContainer wraps container.Load with user-facing messages.
func loadContainer(path string) (*vault.Store, error) {
	store, err := container.Load(path)
	switch {
	case errors.Is(err, container.ErrMissing):
		return nil, errors.New("no vault in current directory (run 'vault init' to create one)")
	case errors.Is(err, container.ErrCorrupt):
		return nil, errors.New("vault in current directory is invalid")
	case err != nil:
		return nil, err
	}
	slog.Debug("loaded vault", "path", path, "files", store.Len())
	return store, nil
}
