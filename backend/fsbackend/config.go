package fsbackend

import (
	"path/filepath"

	"github.com/minigit/minigit/backend"
	"github.com/minigit/minigit/internal/errutil"
	"github.com/minigit/minigit/internal/gitpath"
	"golang.org/x/xerrors"
	"gopkg.in/ini.v1"
)

// setDefaultCfg writes the default .git/config for a freshly
// initialized repository
func (b *Backend) setDefaultCfg() (err error) {
	cfg := ini.Empty()

	core, err := cfg.NewSection(backend.CfgCore)
	if err != nil {
		return xerrors.Errorf("could not create core section: %w", err)
	}
	coreCfg := map[string]string{
		backend.CfgCoreFormatVersion: "0",
		backend.CfgCoreFileMode:      "false",
		backend.CfgCoreBare:          "false",
	}
	for k, v := range coreCfg {
		if _, err := core.NewKey(k, v); err != nil {
			return xerrors.Errorf("could not set %s: %w", k, err)
		}
	}

	p := filepath.Join(b.root, gitpath.ConfigPath)
	w, err := b.fs.Create(p)
	if err != nil {
		return xerrors.Errorf("could not create %s: %w", gitpath.ConfigPath, err)
	}
	defer errutil.Close(w, &err)

	if _, err := cfg.WriteTo(w); err != nil {
		return xerrors.Errorf("could not write %s: %w", gitpath.ConfigPath, err)
	}
	return nil
}
