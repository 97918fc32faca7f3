// Package pathutil locates repository roots on disk.
package pathutil

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/minigit/minigit/internal/gitpath"
	"golang.org/x/xerrors"
)

// ErrNoRepo is returned when no repository could be found
var ErrNoRepo = errors.New("not a git repository (or any of the parent directories)")

// WorkingTreeFromPath walks up from p until it finds a directory
// containing a .git directory, returning that directory (the working
// tree root). It fails with ErrNoRepo if the filesystem root is reached.
func WorkingTreeFromPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", xerrors.Errorf("could not resolve %s: %w", p, err)
	}

	prev := ""
	for abs != prev {
		info, err := os.Stat(filepath.Join(abs, gitpath.DotGitPath))
		if err == nil && info.IsDir() {
			return abs, nil
		}
		prev = abs
		abs = filepath.Dir(abs)
	}
	return "", ErrNoRepo
}

// WorkingTree returns the working tree root containing the current
// working directory.
func WorkingTree() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", xerrors.Errorf("could not get current working directory: %w", err)
	}
	return WorkingTreeFromPath(wd)
}
