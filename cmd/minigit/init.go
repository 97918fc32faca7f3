package main

import (
	"fmt"
	"io"

	minigit "github.com/minigit/minigit"
	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create an empty minigit repository",
		Long:  "This command creates an empty repository: a .git directory with subdirectories for objects, refs/heads, refs/tags, and branches. HEAD points at a branch named master, which is created by the first commit.",
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		return initCmd(cmd.OutOrStdout(), cfg, dir)
	}

	return cmd
}

func initCmd(out io.Writer, cfg *globalFlags, dir string) (err error) {
	if dir == "" {
		wd, wdErr := workingDirectory(cfg)
		if wdErr != nil {
			return wdErr
		}
		dir = wd
	}

	r, err := minigit.InitRepository(afero.NewOsFs(), dir)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	fmt.Fprintf(out, "Initialized empty minigit repository in %s\n", r.Root())
	return nil
}
