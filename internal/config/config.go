// Package config resolves where the container lives and loads the optional
// user-level settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/vaultfile/vault/internal/container"
)

// ContainerPath resolves the container location. An explicit path (from the
// --vault flag) wins, then the VAULT_PATH environment variable, and finally
// vault.vault in the current directory.
func ContainerPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("VAULT_PATH"); env != "" {
		return env
	}
	return container.DefaultName
}

// Settings are optional user-level defaults read from the XDG config dir.
type Settings struct {
	ListFormat   string `yaml:"list_format"`
	ExportPrefix string `yaml:"export_prefix"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() Settings {
	return Settings{
		ListFormat:   "plain",
		ExportPrefix: "vault-",
	}
}

// SettingsPath returns the location of the optional settings file.
func SettingsPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "vault", "config.yaml")
}

// LoadSettings reads the settings file if present. A missing file yields
// the defaults; fields left unset in the file keep their default values.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	raw, err := os.ReadFile(SettingsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, err
	}

	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("config: invalid settings file: %w", err)
	}
	if s.ListFormat == "" {
		s.ListFormat = "plain"
	}
	if s.ExportPrefix == "" {
		s.ExportPrefix = "vault-"
	}
	return s, nil
}
