package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newLogCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log [COMMITTISH]",
		Short: "Show the commit chain, following first parents",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		start := ginternals.Head
		if len(args) > 0 {
			start = args[0]
		}
		return logCmd(cmd.OutOrStdout(), cfg, start)
	}

	return cmd
}

func logCmd(out io.Writer, cfg *globalFlags, start string) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	id, err := r.Resolve(start)
	if err != nil {
		return err
	}

	commits, err := r.Log(id)
	if err != nil {
		return err
	}

	for _, c := range commits {
		fmt.Fprintf(out, "commit %s\n", c.ID().String())
		fmt.Fprintf(out, "Author: %s\n\n", c.Author().String())
		fmt.Fprintf(out, "    %s\n\n", c.Message())
	}
	return nil
}
