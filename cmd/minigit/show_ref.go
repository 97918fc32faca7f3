package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/ginternals"
	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newShowRefCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-ref",
		Short: "List references, branches and tags alike",
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return showRefCmd(cmd.OutOrStdout(), cfg)
	}

	return cmd
}

func showRefCmd(out io.Writer, cfg *globalFlags) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	return r.WalkRefs(func(ref *ginternals.Reference) error {
		if ref.Name() == ginternals.Head {
			return nil
		}
		fmt.Fprintf(out, "%s %s\n", ref.Target().String(), ref.Name())
		return nil
	})
}
