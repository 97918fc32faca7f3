package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/ginternals/object"
	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newLsTreeCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls-tree TREEISH",
		Short: "List the contents of a tree object",
		Args:  cobra.ExactArgs(1),
	}

	recursive := cmd.Flags().BoolP("recursive", "r", false, "Recurse into sub-trees")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lsTreeCmd(cmd.OutOrStdout(), cfg, args[0], *recursive)
	}

	return cmd
}

func lsTreeCmd(out io.Writer, cfg *globalFlags, treeish string, recursive bool) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	id, err := r.ResolveToKind(treeish, object.TypeTree)
	if err != nil {
		return err
	}

	entries, err := r.ListTree(id, recursive)
	if err != nil {
		return err
	}

	for _, e := range entries {
		kind := "blob"
		if e.Mode == object.ModeDirectory {
			kind = "tree"
		}
		fmt.Fprintf(out, "%s %s %s\t%s\n", e.Mode, kind, e.ID.String(), e.Path)
	}
	return nil
}
