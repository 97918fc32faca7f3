package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newBranchCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "branch [NAME [START_POINT]]",
		Short: "List or create branches",
		Long:  "With no arguments, lists every local branch. With NAME, creates refs/heads/NAME pointing at START_POINT (default HEAD).",
		Args:  cobra.RangeArgs(0, 2),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return branchListCmd(cmd.OutOrStdout(), cfg)
		}
		startPoint := "HEAD"
		if len(args) == 2 {
			startPoint = args[1]
		}
		return branchCreateCmd(cmd.OutOrStdout(), cfg, args[0], startPoint)
	}

	return cmd
}

func branchListCmd(out io.Writer, cfg *globalFlags) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	names, err := r.ListBranches()
	if err != nil {
		return err
	}

	current, err := r.CurrentBranch()
	if err != nil {
		return err
	}

	for _, name := range names {
		if name == current {
			fmt.Fprintf(out, "* %s\n", name)
		} else {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}
	return nil
}

func branchCreateCmd(out io.Writer, cfg *globalFlags, name, startPoint string) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	target, err := r.Resolve(startPoint)
	if err != nil {
		return err
	}

	if err := r.CreateBranch(name, target); err != nil {
		return err
	}

	fmt.Fprintf(out, "branch %s created\n", name)
	return nil
}
