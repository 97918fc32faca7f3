package minigit

import (
	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/ginternals/object"
	"golang.org/x/xerrors"
)

// Log returns the commit chain starting at start and following first
// parents, oldest-reachable last. It stops at a commit with no parent
// (the root of the branch).
func (r *Repository) Log(start ginternals.Oid) ([]*object.Commit, error) {
	var commits []*object.Commit

	id := start
	for !id.IsZero() {
		o, err := r.dotGit.Object(id)
		if err != nil {
			return nil, xerrors.Errorf("could not read %s: %w", id, err)
		}
		c, err := o.AsCommit()
		if err != nil {
			return nil, xerrors.Errorf("could not parse %s as a commit: %w", id, err)
		}
		commits = append(commits, c)

		parents := c.ParentIDs()
		if len(parents) == 0 {
			break
		}
		id = parents[0]
	}

	return commits, nil
}
