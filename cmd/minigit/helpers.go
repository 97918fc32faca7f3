package main

import (
	"os"

	minigit "github.com/minigit/minigit"
	"github.com/minigit/minigit/internal/pathutil"
	"github.com/spf13/afero"
)

// workingDirectory returns cfg.C if set, otherwise the process's
// current working directory.
func workingDirectory(cfg *globalFlags) (string, error) {
	if cfg.C != "" {
		return cfg.C, nil
	}
	return os.Getwd()
}

// loadRepository opens the repository containing cfg.C (or the current
// working directory), walking up parent directories the way find_root
// does, against the real filesystem.
func loadRepository(cfg *globalFlags) (*minigit.Repository, error) {
	wd, err := workingDirectory(cfg)
	if err != nil {
		return nil, err
	}
	root, err := pathutil.WorkingTreeFromPath(wd)
	if err != nil {
		return nil, err
	}
	return minigit.OpenRepository(afero.NewOsFs(), root)
}
