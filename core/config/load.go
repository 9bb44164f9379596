package config

import "github.com/spf13/afero"

// Load reads a suite definition from the given path, falling back to the
// embedded default when path is empty.
func Load(fsys afero.Fs, path string) (*Suite, error) {
	if path == "" {
		return Default()
	}

	contents, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	return parse(contents)
}
