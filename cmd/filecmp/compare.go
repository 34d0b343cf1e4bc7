package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func compareFiles(cmd *cobra.Command, files []string) error {
	same, err := newCompare(cmd).Files(files[0], files[1])
	if err != nil {
		return err
	}
	if same {
		fmt.Fprintln(cmd.OutOrStdout(), 1)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), 0)
	}
	return nil
}
