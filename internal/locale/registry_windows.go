//go:build windows

package locale

import "golang.org/x/sys/windows/registry"

func platformSources() []Source {
	return []Source{registrySource{open: openCurrentUserKey}}
}

func openCurrentUserKey(path string) (valueReader, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	return key, nil
}
