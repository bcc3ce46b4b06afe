//go:build !windows && !darwin

package locale

// Other platforms rely on the LANG fallback alone.
func platformSources() []Source {
	return nil
}
