package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"syslang/internal/testsupport"
)

func TestConfigInitWritesSample(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "generated", "config.toml")

	out := env.mustRun(t, "config", "init", "--path", target)
	if !strings.Contains(out, target) {
		t.Fatalf("expected output to mention %s, got %q", target, out)
	}
	if !strings.Contains(testsupport.ReadFile(t, target), "[paths]") {
		t.Fatal("sample config missing [paths] section")
	}

	if _, err := env.run(t, "config", "init", "--path", target); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected already-exists error, got %v", err)
	}

	testsupport.WriteFile(t, target, "# stale\n")
	env.mustRun(t, "config", "init", "--path", target, "--overwrite")
	if strings.Contains(testsupport.ReadFile(t, target), "# stale") {
		t.Fatal("expected --overwrite to replace file")
	}
}

func TestConfigInitSkipsBrokenConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.configPath, "this is not toml =")
	target := filepath.Join(env.baseDir, "fresh.toml")

	env.mustRun(t, "config", "init", "--path", target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected sample written despite broken config: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out := env.mustRun(t, "config", "validate")
	for _, want := range []string{"[OK]", env.configPath, env.prefsPath, "Configuration valid"} {
		if !strings.Contains(out, want) {
			t.Fatalf("validate output missing %q:\n%s", want, out)
		}
	}

	testsupport.WriteFile(t, env.configPath, "[logging]\nformat = \"xml\"\n")
	out, err := env.run(t, "config", "validate")
	if err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
	if !strings.Contains(out, "[ERROR]") {
		t.Fatalf("expected error status line, got %q", out)
	}
}
