package locale

import (
	"os"
	"strings"
)

const defaultEnvVar = "LANG"

// EnvSource reads a POSIX locale variable (lang[_territory][.encoding]).
type EnvSource struct {
	// Var defaults to LANG.
	Var string
	// Lookup defaults to os.LookupEnv.
	Lookup func(string) (string, bool)
}

func (s EnvSource) Name() string {
	return "env:" + s.variable()
}

// PreferredLanguage returns the variable's value up to the first '.',
// dropping encodings such as ".UTF-8". An unset variable is ErrNotDetected;
// a set but empty one is returned as is.
func (s EnvSource) PreferredLanguage() (string, error) {
	lookup := s.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	value, ok := lookup(s.variable())
	if !ok {
		return "", ErrNotDetected
	}
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		value = value[:idx]
	}
	return value, nil
}

func (s EnvSource) variable() string {
	if s.Var == "" {
		return defaultEnvVar
	}
	return s.Var
}
