package fsbackend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minigit/minigit/backend"
	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Reference returns a stored reference from its name.
// ginternals.ErrRefNotFound is returned if it can't be found.
func (b *Backend) Reference(name string) (*ginternals.Reference, error) {
	finder := func(name string) ([]byte, error) {
		data, err := afero.ReadFile(b.fs, b.systemPath(name))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf(`ref "%s": %w`, name, ginternals.ErrRefNotFound)
			}
			return nil, xerrors.Errorf("could not read reference %s: %w", name, err)
		}
		return data, nil
	}
	return ginternals.ResolveReference(name, finder)
}

// ReferenceShallow returns the reference stored at name without
// following a symbolic target.
func (b *Backend) ReferenceShallow(name string) (*ginternals.Reference, error) {
	finder := func(name string) ([]byte, error) {
		data, err := afero.ReadFile(b.fs, b.systemPath(name))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf(`ref "%s": %w`, name, ginternals.ErrRefNotFound)
			}
			return nil, xerrors.Errorf("could not read reference %s: %w", name, err)
		}
		return data, nil
	}
	return ginternals.ResolveReferenceShallow(name, finder)
}

// WriteReference persists ref, overwriting any existing reference of
// the same name
func (b *Backend) WriteReference(ref *ginternals.Reference) error {
	if !ginternals.IsRefNameValid(ref.Name()) {
		return ginternals.ErrRefNameInvalid
	}

	var target string
	switch ref.Type() {
	case ginternals.SymbolicReference:
		target = fmt.Sprintf("ref: %s\n", ref.SymbolicTarget())
	case ginternals.OidReference:
		target = fmt.Sprintf("%s\n", ref.Target().String())
	default:
		return xerrors.Errorf("reference type %d: %w", ref.Type(), ginternals.ErrUnknownRefType)
	}

	p := b.systemPath(ref.Name())
	if err := b.fs.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return xerrors.Errorf("could not create parent directory for %s: %w", ref.Name(), err)
	}
	if err := afero.WriteFile(b.fs, p, []byte(target), 0o644); err != nil {
		return xerrors.Errorf("could not persist reference %s: %w", ref.Name(), err)
	}
	return nil
}

// WriteReferenceSafe persists ref, failing with ErrRefExists if a
// reference of that name already exists
func (b *Backend) WriteReferenceSafe(ref *ginternals.Reference) error {
	if !ginternals.IsRefNameValid(ref.Name()) {
		return ginternals.ErrRefNameInvalid
	}

	_, err := b.fs.Stat(b.systemPath(ref.Name()))
	if err == nil {
		return ginternals.ErrRefExists
	}
	if !os.IsNotExist(err) {
		return xerrors.Errorf("could not check if reference %s exists: %w", ref.Name(), err)
	}

	return b.WriteReference(ref)
}

// WalkReferences runs f on every reference found under refs/heads and
// refs/tags, as well as HEAD.
func (b *Backend) WalkReferences(f backend.RefWalkFunc) error {
	names := []string{ginternals.Head}

	for _, dir := range []string{gitpath.RefsHeadsPath, gitpath.RefsTagsPath} {
		root := filepath.Join(b.root, dir)
		err := afero.Walk(b.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil || path == root || info.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(b.root, path)
			if err != nil {
				return err
			}
			names = append(names, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return xerrors.Errorf("could not walk %s: %w", dir, err)
		}
	}

	for _, name := range names {
		ref, err := b.Reference(name)
		if err != nil {
			if errors.Is(err, ginternals.ErrRefNotFound) {
				continue
			}
			return xerrors.Errorf("could not resolve reference %s: %w", name, err)
		}
		if err := f(ref); err != nil {
			if errors.Is(err, backend.WalkStop) {
				return nil
			}
			return err
		}
	}
	return nil
}
