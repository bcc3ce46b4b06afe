//go:build darwin && !cgo

package locale

func platformSources() []Source {
	return []Source{defaultsSource{}}
}
