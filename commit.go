package minigit

import (
	"errors"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"golang.org/x/xerrors"
)

// placeholderName and placeholderEmail stand in for author/committer
// identity; this core has no config layer to source a real one from.
const (
	placeholderName  = "minigit"
	placeholderEmail = "minigit@localhost"
)

// Commit snapshots the working tree into a new commit object and moves
// the current branch (or HEAD, if detached) to point at it. It returns
// the zero Oid without error when the working tree holds nothing besides
// the .git directory.
func (r *Repository) Commit(message string) (ginternals.Oid, error) {
	empty, err := r.isWorktreeEmpty()
	if err != nil {
		return ginternals.NullOid, err
	}
	if empty {
		return ginternals.NullOid, nil
	}

	treeID, err := r.buildTreeFromDir(r.root)
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not build tree: %w", err)
	}

	var parents []ginternals.Oid
	if parent, err := r.headHash(); err == nil {
		parents = []ginternals.Oid{parent}
	} else if !errors.Is(err, ginternals.ErrRefNotFound) {
		return ginternals.NullOid, xerrors.Errorf("could not read HEAD: %w", err)
	}

	author := object.NewSignature(placeholderName, placeholderEmail)
	c := object.NewCommit(treeID, author, &object.CommitOptions{
		Message:   message,
		ParentIDs: parents,
	})

	id, err := r.dotGit.WriteObject(c.ToObject())
	if err != nil {
		return ginternals.NullOid, xerrors.Errorf("could not write commit: %w", err)
	}

	if err := r.commitToBranch(id); err != nil {
		return ginternals.NullOid, err
	}

	return id, nil
}

// commitToBranch moves whatever HEAD currently resolves through to id:
// the current branch's tip if HEAD is symbolic, or HEAD itself if
// detached.
func (r *Repository) commitToBranch(id ginternals.Oid) error {
	head, err := r.dotGit.ReferenceShallow(ginternals.Head)
	if err != nil {
		return xerrors.Errorf("could not read HEAD: %w", err)
	}

	if head.Type() == ginternals.SymbolicReference {
		branch := ginternals.NewReference(head.SymbolicTarget(), id)
		if err := r.dotGit.WriteReference(branch); err != nil {
			return xerrors.Errorf("could not update %s: %w", head.SymbolicTarget(), err)
		}
		return nil
	}

	if err := r.dotGit.WriteReference(ginternals.NewReference(ginternals.Head, id)); err != nil {
		return xerrors.Errorf("could not update HEAD: %w", err)
	}
	return nil
}
