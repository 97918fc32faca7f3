// Package fsbackend implements backend.Backend on top of a filesystem,
// abstracted through afero.Fs so it can be exercised against an
// in-memory filesystem in tests.
package fsbackend

import (
	"path/filepath"

	"github.com/minigit/minigit/backend"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

var _ backend.Backend = (*Backend)(nil)

// Backend stores objects and references as loose files under a .git
// directory
type Backend struct {
	fs   afero.Fs
	root string
}

// New returns a Backend rooted at dotGitPath, using fs to access disk
func New(fs afero.Fs, dotGitPath string) *Backend {
	return &Backend{
		fs:   fs,
		root: dotGitPath,
	}
}

// Close releases the backend's resources. The filesystem-backed
// implementation holds none.
func (b *Backend) Close() error {
	return nil
}

// Init creates the .git directory layout and its default configuration
func (b *Backend) Init() error {
	dirs := []string{
		gitpath.BranchesPath,
		gitpath.ObjectsPath,
		gitpath.RefsTagsPath,
		gitpath.RefsHeadsPath,
	}
	for _, d := range dirs {
		fullPath := filepath.Join(b.root, d)
		if err := b.fs.MkdirAll(fullPath, 0o750); err != nil {
			return xerrors.Errorf("could not create directory %s: %w", d, err)
		}
	}

	descPath := filepath.Join(b.root, gitpath.DescriptionPath)
	desc := []byte("Unnamed repository; edit this file 'description' to name the repository.\n")
	if err := afero.WriteFile(b.fs, descPath, desc, 0o644); err != nil {
		return xerrors.Errorf("could not create %s: %w", gitpath.DescriptionPath, err)
	}

	if err := b.setDefaultCfg(); err != nil {
		return xerrors.Errorf("could not set the default config: %w", err)
	}

	return nil
}

// systemPath turns a slash-separated path relative to .git (e.g. a
// reference name) into one using the host's path separator
func (b *Backend) systemPath(name string) string {
	return filepath.Join(b.root, filepath.FromSlash(name))
}
