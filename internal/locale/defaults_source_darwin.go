package locale

import (
	"fmt"
	"os/exec"
)

// defaultsSource asks the user defaults system for AppleLocale. It stands in
// for NSLocale on darwin builds without cgo.
type defaultsSource struct {
	run func() ([]byte, error)
}

func (defaultsSource) Name() string { return "defaults" }

func (s defaultsSource) PreferredLanguage() (string, error) {
	run := s.run
	if run == nil {
		run = readAppleLocale
	}
	out, err := run()
	if err != nil {
		return "", fmt.Errorf("%w: defaults read AppleLocale: %w", ErrNotDetected, err)
	}
	lang := languageCode(string(out))
	if lang == "" {
		return "", ErrNotDetected
	}
	return lang, nil
}

func readAppleLocale() ([]byte, error) {
	return exec.Command("defaults", "read", "-g", "AppleLocale").Output()
}
