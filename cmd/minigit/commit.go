package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newCommitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record changes in the working tree as a new commit",
	}

	message := cmd.Flags().StringP("message", "m", "", "Use the given message as the commit message.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return commitCmd(cmd.OutOrStdout(), cfg, *message)
	}

	return cmd
}

func commitCmd(out io.Writer, cfg *globalFlags, message string) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	id, err := r.Commit(message)
	if err != nil {
		return err
	}
	if id.IsZero() {
		fmt.Fprintln(out, "nothing to commit")
		return nil
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return err
	}
	if branch != "" {
		fmt.Fprintf(out, "[%s %s] %s\n", branch, id.String()[:7], message)
	} else {
		fmt.Fprintf(out, "[detached HEAD %s] %s\n", id.String()[:7], message)
	}
	return nil
}
