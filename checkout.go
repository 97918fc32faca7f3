package minigit

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Checkout switches the working tree to name, a branch, lightweight tag,
// or hex hash naming a commit or tree. An annotated tag name resolves to
// the tag object, which is not followed, so it fails with ErrWrongKind.
// The working tree is cleared and rebuilt from the target's tree; a
// partial failure midway is not rolled back.
func (r *Repository) Checkout(name string) error {
	if err := r.clearWorktree(); err != nil {
		return xerrors.Errorf("could not clear working tree: %w", err)
	}

	id, err := r.Resolve(name)
	if err != nil {
		return xerrors.Errorf("could not resolve %q: %w", name, err)
	}

	if err := r.updateHEADFor(name, id); err != nil {
		return err
	}

	treeID, err := r.treeIDOf(id)
	if err != nil {
		return err
	}

	tree, err := r.readTree(treeID)
	if err != nil {
		return err
	}

	return r.materializeTree(tree, r.root)
}

// updateHEADFor points HEAD at the branch named name if one exists,
// otherwise detaches it at id.
func (r *Repository) updateHEADFor(name string, id ginternals.Oid) error {
	branchRef := ginternals.LocalBranchFullName(name)
	_, err := r.dotGit.Reference(branchRef)
	switch {
	case err == nil:
		if err := r.dotGit.WriteReference(ginternals.NewSymbolicReference(ginternals.Head, branchRef)); err != nil {
			return xerrors.Errorf("could not update HEAD: %w", err)
		}
		return nil
	case errors.Is(err, ginternals.ErrRefNotFound):
		if err := r.dotGit.WriteReference(ginternals.NewReference(ginternals.Head, id)); err != nil {
			return xerrors.Errorf("could not detach HEAD: %w", err)
		}
		return nil
	default:
		return xerrors.Errorf("could not check branch %q: %w", name, err)
	}
}

// treeIDOf returns the Oid of the tree reachable from id: itself if id
// names a tree, or its tree if id names a commit.
func (r *Repository) treeIDOf(id ginternals.Oid) (ginternals.Oid, error) {
	o, err := r.dotGit.Object(id)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not read %s: %w", id, err)
	}
	switch o.Type() {
	case object.TypeCommit:
		c, err := o.AsCommit()
		if err != nil {
			return ginternals.NullOid, err
		}
		return c.TreeID(), nil
	case object.TypeTree:
		return id, nil
	default:
		return ginternals.NullOid, xerrors.Errorf("%s is a %s, not a commit or tree: %w", id, o.Type(), ErrWrongKind)
	}
}

func (r *Repository) readTree(id ginternals.Oid) (*object.Tree, error) {
	o, err := r.dotGit.Object(id)
	if err != nil {
		return nil, xerrors.Errorf("could not read tree %s: %w", id, err)
	}
	return o.AsTree()
}

func (r *Repository) readBlob(id ginternals.Oid) (*object.Blob, error) {
	o, err := r.dotGit.Object(id)
	if err != nil {
		return nil, xerrors.Errorf("could not read blob %s: %w", id, err)
	}
	return o.AsBlob(), nil
}

// clearWorktree removes every entry under the working tree root except
// the .git directory.
func (r *Repository) clearWorktree() error {
	infos, err := afero.ReadDir(r.wt, r.root)
	if err != nil {
		return xerrors.Errorf("could not list %s: %w", r.root, err)
	}
	for _, info := range infos {
		if info.Name() == gitpath.DotGitPath {
			continue
		}
		full := filepath.Join(r.root, info.Name())
		if err := r.wt.RemoveAll(full); err != nil {
			return xerrors.Errorf("could not remove %s: %w", full, err)
		}
	}
	return nil
}

// materializeTree recursively writes tree's entries under dir: blobs
// become files (or symlinks), trees become directories.
func (r *Repository) materializeTree(tree *object.Tree, dir string) error {
	for _, e := range tree.Entries() {
		full := filepath.Join(dir, e.Name)

		switch e.Mode {
		case object.ModeDirectory:
			if err := r.wt.MkdirAll(full, 0o755); err != nil {
				return xerrors.Errorf("could not create %s: %w", full, err)
			}
			sub, err := r.readTree(e.ID)
			if err != nil {
				return err
			}
			if err := r.materializeTree(sub, full); err != nil {
				return err
			}

		case object.ModeSymLink:
			blob, err := r.readBlob(e.ID)
			if err != nil {
				return err
			}
			linker, ok := r.wt.(afero.Linker)
			if !ok {
				return xerrors.Errorf("filesystem cannot create symlinks for %s", full)
			}
			if err := linker.SymlinkIfPossible(string(blob.Bytes()), full); err != nil {
				return xerrors.Errorf("could not create symlink %s: %w", full, err)
			}

		default:
			blob, err := r.readBlob(e.ID)
			if err != nil {
				return err
			}
			perm := os.FileMode(0o644)
			if e.Mode == object.ModeExecutable {
				perm = 0o755
			}
			if err := afero.WriteFile(r.wt, full, blob.Bytes(), perm); err != nil {
				return xerrors.Errorf("could not write %s: %w", full, err)
			}
		}
	}
	return nil
}
