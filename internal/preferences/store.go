package preferences

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"syslang/internal/fileutil"
	"syslang/internal/language"
	"syslang/internal/logging"
)

const languageKey = "language"

// ErrUnsupported is returned when saving a tag the application does not ship.
var ErrUnsupported = errors.New("unsupported language")

// Store reads and writes the preferences file.
type Store struct {
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// NewStore returns a store backed by path. The file is created lazily.
func NewStore(path string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "preferences"),
	}
}

// Path returns the preferences file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved language. A missing file, a missing key, or a value
// outside the supported set all report ok=false without error.
func (s *Store) Load() (language.Tag, bool, error) {
	doc, err := s.read()
	if err != nil {
		return "", false, err
	}
	raw, present := doc[languageKey]
	if !present {
		return "", false, nil
	}
	value, isString := raw.(string)
	tag, ok := language.Parse(value)
	if !isString || !ok {
		s.logger.Debug("ignoring unsupported saved language",
			logging.Any("value", raw),
			logging.String("path", s.path))
		return "", false, nil
	}
	return tag, true, nil
}

// Save records tag as the user's choice.
func (s *Store) Save(tag language.Tag) error {
	if !tag.IsSupported() {
		return fmt.Errorf("%w: %q", ErrUnsupported, string(tag))
	}
	err := s.update(func(doc map[string]any) {
		doc[languageKey] = tag.String()
	})
	if err != nil {
		return err
	}
	s.logger.Info("language preference saved",
		logging.String("language", tag.String()),
		logging.String(logging.FieldEventType, "preference_saved"))
	return nil
}

// Clear forgets the user's choice. Clearing when nothing is saved succeeds.
func (s *Store) Clear() error {
	err := s.update(func(doc map[string]any) {
		delete(doc, languageKey)
	})
	if err != nil {
		return err
	}
	s.logger.Info("language preference cleared",
		logging.String(logging.FieldEventType, "preference_cleared"))
	return nil
}

func (s *Store) read() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	doc := map[string]any{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse preferences %s: %w", s.path, err)
	}
	return doc, nil
}

// update applies fn under the writer lock. An emptied document removes the
// file rather than leaving a blank one behind.
func (s *Store) update(fn func(map[string]any)) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences directory: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock preferences: %w", err)
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			logging.WarnWithContext(s.logger, "failed to release preferences lock", "preference_unlock_failed",
				logging.Error(err),
				logging.String("lock", s.lock.Path()),
				logging.String(logging.FieldImpact, "later preference writes may block"),
				logging.String(logging.FieldErrorHint, "remove the lock file if no syslang process is running"))
		}
	}()

	doc, err := s.read()
	if err != nil {
		return err
	}
	fn(doc)

	if len(doc) == 0 {
		if err := fileutil.RemoveIfExists(s.path); err != nil {
			return fmt.Errorf("remove preferences: %w", err)
		}
		return nil
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
