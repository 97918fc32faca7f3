package main

import (
	"fmt"
	"io"

	"github.com/minigit/minigit/internal/errutil"
	"github.com/spf13/cobra"
)

func newTagCmd(cfg *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag [NAME [TARGET]]",
		Short: "List, or create lightweight or annotated tags",
		Long:  "With no arguments, lists every tag. With NAME, creates refs/tags/NAME pointing at TARGET (default HEAD); -a makes it an annotated tag object, using -m as its message.",
		Args:  cobra.RangeArgs(0, 2),
	}

	annotate := cmd.Flags().BoolP("annotate", "a", false, "Make an unsigned, annotated tag object")
	message := cmd.Flags().StringP("message", "m", "", "Use the given tag message (only with -a).")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return tagListCmd(cmd.OutOrStdout(), cfg)
		}
		target := "HEAD"
		if len(args) == 2 {
			target = args[1]
		}
		return tagCreateCmd(cmd.OutOrStdout(), cfg, args[0], target, *annotate, *message)
	}

	return cmd
}

func tagListCmd(out io.Writer, cfg *globalFlags) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	names, err := r.ListTags()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func tagCreateCmd(out io.Writer, cfg *globalFlags, name, targetName string, annotate bool, message string) (err error) {
	r, err := loadRepository(cfg)
	if err != nil {
		return err
	}
	defer errutil.Close(r, &err)

	target, err := r.Resolve(targetName)
	if err != nil {
		return err
	}

	if annotate {
		id, err := r.CreateAnnotatedTag(name, target, message)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", id.String())
		return nil
	}

	if err := r.CreateLightweightTag(name, target); err != nil {
		return err
	}
	return nil
}
