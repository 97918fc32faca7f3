// Package gitconfig reads the small subset of .git/config this core
// cares about: the "core" section written by init.
package gitconfig

import (
	"github.com/minigit/minigit/backend"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

// Config is the parsed content of .git/config
type Config struct {
	RepositoryFormatVersion int
	FileMode                bool
	Bare                    bool
}

// Load reads and parses the .git/config file at path from fs
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, xerrors.Errorf("could not read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses the raw contents of a .git/config file
func Parse(data []byte) (*Config, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, xerrors.Errorf("could not parse config: %w", err)
	}

	core := f.Section(backend.CfgCore)
	return &Config{
		RepositoryFormatVersion: core.Key(backend.CfgCoreFormatVersion).MustInt(0),
		FileMode:                core.Key(backend.CfgCoreFileMode).MustBool(false),
		Bare:                    core.Key(backend.CfgCoreBare).MustBool(false),
	}, nil
}
