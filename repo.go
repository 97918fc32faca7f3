// Package minigit ties the object store, reference store, and name
// resolver together into the handful of operations a porcelain layer
// calls: initializing a repository, building commits from the working
// tree, and checking it back out.
package minigit

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/minigit/minigit/backend"
	"github.com/minigit/minigit/backend/fsbackend"
	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"github.com/minigit/minigit/gitconfig"
	"github.com/minigit/minigit/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

var (
	// ErrNotARepository is returned when no .git directory could be found
	ErrNotARepository = errors.New("not a git repository (or any of the parent directories)")
	// ErrAlreadyInitialized is returned when Init targets a path that
	// exists and is not an empty directory
	ErrAlreadyInitialized = errors.New("destination already exists and is not empty")
	// ErrUnsupportedFormat is returned when a repository's
	// core.repositoryformatversion isn't 0
	ErrUnsupportedFormat = errors.New("unsupported repository format version")
)

// Repository ties a working tree to its .git directory. wt is the
// filesystem the working tree and .git both live on; root is the
// working tree's absolute path.
type Repository struct {
	wt     afero.Fs
	root   string
	dotGit backend.Backend
}

// InitRepository creates a new repository rooted at root, which must
// either not exist yet or be an empty directory.
func InitRepository(fs afero.Fs, root string) (*Repository, error) {
	root = filepath.Clean(root)

	empty, err := isEmptyOrMissing(fs, root)
	if err != nil {
		return nil, xerrors.Errorf("could not inspect %s: %w", root, err)
	}
	if !empty {
		return nil, xerrors.Errorf("%s: %w", root, ErrAlreadyInitialized)
	}

	gitDir := filepath.Join(root, gitpath.DotGitPath)
	b := fsbackend.New(fs, gitDir)
	if err := b.Init(); err != nil {
		return nil, xerrors.Errorf("could not initialize repository: %w", err)
	}

	head := ginternals.NewSymbolicReference(ginternals.Head, ginternals.LocalBranchFullName(ginternals.Master))
	if err := b.WriteReference(head); err != nil {
		return nil, xerrors.Errorf("could not write HEAD: %w", err)
	}

	return &Repository{wt: fs, root: root, dotGit: b}, nil
}

// OpenRepository opens an existing repository rooted at root.
func OpenRepository(fs afero.Fs, root string) (*Repository, error) {
	root = filepath.Clean(root)
	gitDir := filepath.Join(root, gitpath.DotGitPath)

	ok, err := afero.DirExists(fs, gitDir)
	if err != nil {
		return nil, xerrors.Errorf("could not stat %s: %w", gitDir, err)
	}
	if !ok {
		return nil, xerrors.Errorf("%s: %w", root, ErrNotARepository)
	}

	cfg, err := gitconfig.Load(fs, filepath.Join(gitDir, gitpath.ConfigPath))
	if err != nil {
		return nil, xerrors.Errorf("could not load config: %w", err)
	}
	if cfg.RepositoryFormatVersion != 0 {
		return nil, xerrors.Errorf("version %d: %w", cfg.RepositoryFormatVersion, ErrUnsupportedFormat)
	}

	return &Repository{wt: fs, root: root, dotGit: fsbackend.New(fs, gitDir)}, nil
}

// Close releases the resources held by the repository's backend
func (r *Repository) Close() error {
	return r.dotGit.Close()
}

// Root returns the repository's working tree root
func (r *Repository) Root() string {
	return r.root
}

// GetObject returns the object stored at id
func (r *Repository) GetObject(id ginternals.Oid) (*object.Object, error) {
	return r.dotGit.Object(id)
}

// WriteObject persists o, returning its Oid
func (r *Repository) WriteObject(o *object.Object) (ginternals.Oid, error) {
	return r.dotGit.WriteObject(o)
}

// CurrentBranch returns the short name of the branch HEAD points at, or
// "" if HEAD is detached or doesn't exist yet.
func (r *Repository) CurrentBranch() (string, error) {
	head, err := r.dotGit.ReferenceShallow(ginternals.Head)
	if err != nil {
		if errors.Is(err, ginternals.ErrRefNotFound) {
			return "", nil
		}
		return "", xerrors.Errorf("could not read HEAD: %w", err)
	}
	if head.Type() != ginternals.SymbolicReference {
		return "", nil
	}
	return ginternals.LocalBranchShortName(head.SymbolicTarget()), nil
}

// headHash returns the hash HEAD currently resolves to.
// ginternals.ErrRefNotFound is returned when HEAD points at a branch
// that hasn't been committed to yet.
func (r *Repository) headHash() (ginternals.Oid, error) {
	head, err := r.dotGit.Reference(ginternals.Head)
	if err != nil {
		return ginternals.NullOid, err
	}
	return head.Target(), nil
}

// isEmptyOrMissing returns whether path doesn't exist, or exists as an
// empty directory.
func isEmptyOrMissing(fs afero.Fs, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	if !info.IsDir() {
		return false, nil
	}

	entries, err := afero.ReadDir(fs, path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
