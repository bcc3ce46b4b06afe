package preferences

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"syslang/internal/language"
	"syslang/internal/logging"
)

type fixedDetector language.Tag

func (d fixedDetector) Language() language.Tag { return language.Tag(d) }

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "preferences.toml"), logging.NewNop())
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	tag, ok, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if ok || tag != "" {
		t.Fatalf("Load = (%q, %v), want no preference", tag, ok)
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(language.SimplifiedChinese); err != nil {
		t.Fatalf("Save: %v", err)
	}
	tag, ok, err := store.Load()
	if err != nil || !ok {
		t.Fatalf("Load = (%q, %v, %v)", tag, ok, err)
	}
	if tag != language.SimplifiedChinese {
		t.Fatalf("Load tag = %q, want zh-CN", tag)
	}

	if err := store.Save(language.English); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if tag, _, _ := store.Load(); tag != language.English {
		t.Fatalf("Load after overwrite = %q, want en", tag)
	}
}

func TestSaveRejectsUnsupported(t *testing.T) {
	store := newTestStore(t)
	err := store.Save(language.Tag("fr"))
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("Save(fr) error = %v, want ErrUnsupported", err)
	}
	if _, statErr := os.Stat(store.Path()); !os.IsNotExist(statErr) {
		t.Fatalf("rejected save should not create the file, stat err = %v", statErr)
	}
}

func TestLoadIgnoresUnsupportedValue(t *testing.T) {
	for _, content := range []string{
		"language = \"de-DE\"\n",
		"language = 42\n",
		"theme = \"dark\"\n",
	} {
		store := newTestStore(t)
		writeFile(t, store.Path(), content)
		tag, ok, err := store.Load()
		if err != nil {
			t.Fatalf("Load(%q) error: %v", content, err)
		}
		if ok {
			t.Fatalf("Load(%q) = %q, want no preference", content, tag)
		}
	}
}

func TestLoadAcceptsLooseSpelling(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.Path(), "language = \"zh_cn\"\n")
	tag, ok, err := store.Load()
	if err != nil || !ok || tag != language.SimplifiedChinese {
		t.Fatalf("Load = (%q, %v, %v), want zh-CN", tag, ok, err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.Path(), "language = \n")
	if _, _, err := store.Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSavePreservesOtherKeys(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.Path(), "theme = \"dark\"\n")
	if err := store.Save(language.English); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "theme") {
		t.Fatalf("expected theme key to survive, got %q", data)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(store.Path()); err != nil {
		t.Fatalf("file with remaining keys should survive Clear: %v", err)
	}
	if _, ok, _ := store.Load(); ok {
		t.Fatal("expected no preference after Clear")
	}
}

func TestClearRemovesFile(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save(language.SimplifiedChinese); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := os.Stat(store.Path()); !os.IsNotExist(err) {
		t.Fatalf("expected preferences file removed, stat err = %v", err)
	}
}

func TestClearMissingFile(t *testing.T) {
	store := newTestStore(t)
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear on missing file: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestInitialLanguage(t *testing.T) {
	t.Run("preference wins", func(t *testing.T) {
		store := newTestStore(t)
		if err := store.Save(language.SimplifiedChinese); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got := InitialLanguage(store, fixedDetector(language.English))
		if got.Tag != language.SimplifiedChinese || !got.FromPreference {
			t.Fatalf("InitialLanguage = %+v", got)
		}
	})

	t.Run("detection when unset", func(t *testing.T) {
		got := InitialLanguage(newTestStore(t), fixedDetector(language.SimplifiedChinese))
		if got.Tag != language.SimplifiedChinese || got.FromPreference {
			t.Fatalf("InitialLanguage = %+v", got)
		}
	})

	t.Run("invalid saved value ignored", func(t *testing.T) {
		store := newTestStore(t)
		writeFile(t, store.Path(), "language = \"ja\"\n")
		got := InitialLanguage(store, fixedDetector(language.SimplifiedChinese))
		if got.Tag != language.SimplifiedChinese || got.FromPreference {
			t.Fatalf("InitialLanguage = %+v", got)
		}
	})

	t.Run("unreadable store falls through", func(t *testing.T) {
		store := newTestStore(t)
		writeFile(t, store.Path(), "not toml at all ===\n")
		got := InitialLanguage(store, fixedDetector(language.SimplifiedChinese))
		if got.Tag != language.SimplifiedChinese {
			t.Fatalf("InitialLanguage = %+v", got)
		}
	})

	t.Run("nothing available", func(t *testing.T) {
		got := InitialLanguage(nil, nil)
		if got.Tag != language.Default || got.FromPreference {
			t.Fatalf("InitialLanguage = %+v", got)
		}
	})

	t.Run("unsupported detection", func(t *testing.T) {
		got := InitialLanguage(nil, fixedDetector("fr"))
		if got.Tag != language.Default {
			t.Fatalf("InitialLanguage = %+v", got)
		}
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}
