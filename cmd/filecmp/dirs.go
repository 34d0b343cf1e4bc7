package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ozbenh/dirdiff"
)

func init() {
	dirsCmd.RunE = compareDirs
	dirsCmd.Flags().IntVarP(&dirsCmd.limit, "limit", "l", 0,
		"Stop after this many differences, 0 means no limit")
	rootCmd.AddCommand(&dirsCmd.Command)
}

var dirsCmd = struct {
	cobra.Command
	limit int
}{
	Command: cobra.Command{
		Use:   "dirs [flags] DIR1 DIR2",
		Short: "List the entries that differ between two directory trees",
		Args:  cobra.ExactArgs(2),
	},
}

func compareDirs(cmd *cobra.Command, dirs []string) error {
	cmpr := newCompare(cmd)
	cmpr.DifferenceLimit = dirsCmd.limit
	out := cmd.OutOrStdout()
	n, err := cmpr.Dirs(dirs[0], dirs[1], func(d dirdiff.Difference) bool {
		fmt.Fprintf(out, "%s: %s\n", d.Kind, d.Path)
		return false
	})
	if err != nil {
		return err
	}
	cmpr.Logger.Info("compared trees", "first", dirs[0], "second", dirs[1], "differences", n)
	return nil
}
