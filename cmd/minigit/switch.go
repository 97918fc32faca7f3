package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newSwitchCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout COMMITTISH",
		Short: "Switch the working tree to the given branch, lightweight tag, or commit",
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return checkoutCmd(cmd.OutOrStdout(), cfg, args[0])
	}

	return cmd
}

func checkoutCmd(out io.Writer, cfg *globalFlags, name string) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	if err := r.Checkout(name); err != nil {
		return err
	}

	fmt.Fprintf(out, "Switched to %s\n", name)
	return nil
}
