package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestContainerPathExplicitWins(t *testing.T) {
	t.Setenv("VAULT_PATH", "/somewhere/else.vault")

	if got := ContainerPath("my.vault"); got != "my.vault" {
		t.Fatalf("expected explicit path to win, got %q", got)
	}
}

func TestContainerPathFromEnv(t *testing.T) {
	t.Setenv("VAULT_PATH", "/tmp/env.vault")

	if got := ContainerPath(""); got != "/tmp/env.vault" {
		t.Fatalf("expected VAULT_PATH to apply, got %q", got)
	}
}

func TestContainerPathDefault(t *testing.T) {
	t.Setenv("VAULT_PATH", "")

	if got := ContainerPath(""); got != "vault.vault" {
		t.Fatalf("expected default container name, got %q", got)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if settings != DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "vault")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	content := "list_format: table\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	settings, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings returned error: %v", err)
	}
	if settings.ListFormat != "table" {
		t.Fatalf("expected list_format table, got %q", settings.ListFormat)
	}
	if settings.ExportPrefix != "vault-" {
		t.Fatalf("unset fields must keep defaults, got %q", settings.ExportPrefix)
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	dir := filepath.Join(tmp, "vault")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadSettings(); err == nil {
		t.Fatalf("expected error for invalid settings file")
	}
}
