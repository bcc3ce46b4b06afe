package locale

import (
	"errors"
	"fmt"
	"strings"
)

const (
	desktopKeyPath       = `Control Panel\Desktop`
	muiCachedKeyPath     = `Control Panel\Desktop\MuiCached`
	preferredUILanguages = "PreferredUILanguages"
)

// valueReader is the slice of registry.Key the registry source needs.
type valueReader interface {
	GetStringsValue(name string) ([]string, uint32, error)
	GetStringValue(name string) (string, uint32, error)
	Close() error
}

type keyOpener func(path string) (valueReader, error)

// registrySource reads PreferredUILanguages from the current user's hive,
// falling back from Control Panel\Desktop to its MuiCached subkey.
type registrySource struct {
	open keyOpener
}

func (registrySource) Name() string { return "registry" }

func (s registrySource) PreferredLanguage() (string, error) {
	if s.open == nil {
		return "", ErrNotDetected
	}
	var errs []error
	for _, path := range []string{desktopKeyPath, muiCachedKeyPath} {
		lang, err := s.readKey(path)
		if err == nil {
			return lang, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", path, err))
	}
	return "", fmt.Errorf("%w: %w", ErrNotDetected, errors.Join(errs...))
}

// readKey accepts the value as REG_MULTI_SZ (first entry wins) or REG_SZ.
func (s registrySource) readKey(path string) (string, error) {
	key, err := s.open(path)
	if err != nil {
		return "", fmt.Errorf("open key: %w", err)
	}
	defer key.Close()

	langs, _, multiErr := key.GetStringsValue(preferredUILanguages)
	if multiErr == nil && len(langs) > 0 {
		if first := strings.TrimSpace(langs[0]); first != "" {
			return first, nil
		}
	}

	lang, _, err := key.GetStringValue(preferredUILanguages)
	if err != nil {
		if multiErr != nil {
			return "", fmt.Errorf("read %s: %w", preferredUILanguages, errors.Join(multiErr, err))
		}
		return "", fmt.Errorf("read %s: %w", preferredUILanguages, err)
	}
	if lang = strings.TrimSpace(lang); lang == "" {
		return "", fmt.Errorf("read %s: empty value", preferredUILanguages)
	}
	return lang, nil
}
