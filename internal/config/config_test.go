package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"syslang/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SYSLANG_LOG_LEVEL", "")
	t.Setenv("SYSLANG_LOG_FORMAT", "")
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "syslang", "config.toml") {
		t.Fatalf("unexpected resolved path %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantPrefs := filepath.Join(tempHome, ".config", "syslang", "preferences.toml")
	if cfg.Paths.PreferencesFile != wantPrefs {
		t.Fatalf("unexpected preferences file: got %q want %q", cfg.Paths.PreferencesFile, wantPrefs)
	}
	wantSocket := filepath.Join(tempHome, ".local", "share", "syslang", "syslang.sock")
	if cfg.Paths.SocketPath != wantSocket {
		t.Fatalf("unexpected socket path: got %q want %q", cfg.Paths.SocketPath, wantSocket)
	}
	if cfg.Paths.LogDir != "" {
		t.Fatalf("expected file logging disabled by default, got %q", cfg.Paths.LogDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{filepath.Dir(cfg.Paths.PreferencesFile), filepath.Dir(cfg.Paths.SocketPath)} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("SYSLANG_LOG_LEVEL", "")
	t.Setenv("SYSLANG_LOG_FORMAT", "")
	configPath := filepath.Join(tempDir, "syslang.toml")

	custom := config.Default()
	custom.Paths.PreferencesFile = "~/prefs/lang.toml"
	custom.Paths.LogDir = "~/logs"
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Paths.PreferencesFile != filepath.Join(tempDir, "prefs", "lang.toml") {
		t.Fatalf("unexpected preferences file %q", cfg.Paths.PreferencesFile)
	}
	if cfg.Paths.LogDir != filepath.Join(tempDir, "logs") {
		t.Fatalf("unexpected log dir %q", cfg.Paths.LogDir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging: %+v", cfg.Logging)
	}
}

func TestLoadEnvOverridesLogging(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SYSLANG_LOG_LEVEL", "DEBUG")
	t.Setenv("SYSLANG_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("expected env overrides, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"verbose\"\n", "logging.level"},
		{"negative retention", "[logging]\nretention_days = -1\n", "logging.retention_days"},
		{"unknown key", "[paths]\nqueue_dir = \"/tmp\"\n", "parse config"},
		{"malformed", "[paths\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv("SYSLANG_LOG_LEVEL", "")
			t.Setenv("SYSLANG_LOG_FORMAT", "")
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SYSLANG_LOG_LEVEL", "")
	t.Setenv("SYSLANG_LOG_FORMAT", "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample to exist")
	}
	if cfg.Logging.RetentionDays != config.Default().Logging.RetentionDays {
		t.Fatalf("sample retention %d differs from default", cfg.Logging.RetentionDays)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/a/b")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "a", "b") {
		t.Fatalf("ExpandPath = %q", got)
	}
	if got, _ := config.ExpandPath(""); got != "" {
		t.Fatalf("ExpandPath(\"\") = %q", got)
	}
}
