package minigit

import (
	"os"
	"path/filepath"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// isWorktreeEmpty reports whether the working tree has nothing in it
// besides the .git directory.
func (r *Repository) isWorktreeEmpty() (bool, error) {
	infos, err := afero.ReadDir(r.wt, r.root)
	if err != nil {
		return false, xerrors.Errorf("could not list %s: %w", r.root, err)
	}
	for _, info := range infos {
		if info.Name() != gitpath.DotGitPath {
			return false, nil
		}
	}
	return true, nil
}

// buildTreeFromDir walks dir non-recursively, persisting a blob for
// every file or symlink and recursing into subdirectories other than
// .git, and returns the Oid of the resulting tree.
func (r *Repository) buildTreeFromDir(dir string) (ginternals.Oid, error) {
	infos, err := afero.ReadDir(r.wt, dir)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not list %s: %w", dir, err)
	}

	var entries []object.Entry
	for _, info := range infos {
		if info.Name() == gitpath.DotGitPath {
			continue
		}
		full := filepath.Join(dir, info.Name())

		if info.IsDir() {
			id, err := r.buildTreeFromDir(full)
			if err != nil {
				return ginternals.NullOid, err
			}
			entries = append(entries, object.Entry{Mode: object.ModeDirectory, Name: info.Name(), ID: id})
			continue
		}

		id, mode, err := r.writeBlobFor(full, info)
		if err != nil {
			return ginternals.NullOid, err
		}
		entries = append(entries, object.Entry{Mode: mode, Name: info.Name(), ID: id})
	}

	tree := object.NewTree(entries)
	id, err := r.dotGit.WriteObject(tree.ToObject())
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not write tree for %s: %w", dir, err)
	}
	return id, nil
}

// writeBlobFor persists a blob for the regular file or symlink at full,
// returning its Oid and the mode it should carry in the parent tree.
func (r *Repository) writeBlobFor(full string, info os.FileInfo) (ginternals.Oid, object.Mode, error) {
	isSymlink := info.Mode()&os.ModeSymlink != 0

	var content []byte
	if isSymlink {
		target, err := afero.ReadlinkIfPossible(r.wt, full)
		if err != nil {
			return ginternals.NullOid, "", xerrors.Errorf("could not read symlink %s: %w", full, err)
		}
		content = []byte(target)
	} else {
		var err error
		content, err = afero.ReadFile(r.wt, full)
		if err != nil {
			return ginternals.NullOid, "", xerrors.Errorf("could not read %s: %w", full, err)
		}
	}

	isExec := !isSymlink && info.Mode()&0o111 != 0
	mode := object.ModeFromFileInfo(false, isSymlink, isExec)

	blob := object.NewBlob(content)
	id, err := r.dotGit.WriteObject(blob.ToObject())
	if err != nil {
		return ginternals.NullOid, "", xerrors.Errorf("could not write blob for %s: %w", full, err)
	}
	return id, mode, nil
}
