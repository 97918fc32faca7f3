package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newLsFilesCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls-files",
		Short: "Show information about staged files in the index",
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lsFilesCmd(cmd.OutOrStdout(), cfg)
	}

	return cmd
}

func lsFilesCmd(out io.Writer, cfg *globalFlags) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	entries, err := r.ListIndexEntries()
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintln(out, e.Path)
	}
	return nil
}
