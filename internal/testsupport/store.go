package testsupport

import (
	"testing"

	"syslang/internal/config"
	"syslang/internal/language"
	"syslang/internal/logging"
	"syslang/internal/preferences"
)

// NewStore returns a preference store at the config's preferences path.
func NewStore(t testing.TB, cfg *config.Config) *preferences.Store {
	t.Helper()
	return preferences.NewStore(cfg.Paths.PreferencesFile, logging.NewNop())
}

// MustSave saves tag through a fresh store and fails the test on error.
func MustSave(t testing.TB, cfg *config.Config, tag language.Tag) {
	t.Helper()

	if err := NewStore(t, cfg).Save(tag); err != nil {
		t.Fatalf("save preference %q: %v", tag, err)
	}
}
