// A command line tool to tell whether two files have the same content
package main

import (
	"log"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ozbenh/dirdiff"
)

var rootCmd = struct {
	cobra.Command
	mode    dirdiff.Mode
	rcs, bk bool
	bufSize int
	verbose bool
}{
	Command: cobra.Command{
		Use:   "filecmp [flags] FILE1 FILE2",
		Short: "Tell whether two files have the same content",
		Long: `Tell whether two files have the same content.

Prints 1 if they have, 0 otherwise.

MODES
   none:         files must be identical
   rcs-tolerant: RCS keyword tags like $Id: ... $ are equal whatever they
                 contain, $Log$ tags include the following comment lines
   bk-tolerant:  the rest of a line after "BK Id: " is ignored`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
	},
}

func init() {
	rootCmd.RunE = compareFiles
	flags := rootCmd.PersistentFlags()
	flags.VarP(&rootCmd.mode, "mode", "m",
		"Set comparison mode: none, rcs-tolerant or bk-tolerant")
	flags.BoolVar(&rootCmd.rcs, "rcs", false, "Short for --mode rcs-tolerant")
	flags.BoolVar(&rootCmd.bk, "bk", false, "Short for --mode bk-tolerant")
	flags.IntVarP(&rootCmd.bufSize, "buffer-size", "b", dirdiff.DefaultBufferSize,
		"Set size of each of the two read buffers")
	flags.BoolVarP(&rootCmd.verbose, "verbose", "v", false,
		"Log comparison details to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("mode", "rcs", "bk")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("filecmp: ")
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func newCompare(cmd *cobra.Command) *dirdiff.Compare {
	mode := rootCmd.mode
	switch {
	case rootCmd.rcs:
		mode = dirdiff.RCSTagTolerant
	case rootCmd.bk:
		mode = dirdiff.BKTagTolerant
	}
	level := slog.LevelWarn
	if rootCmd.verbose {
		level = slog.LevelDebug
	}
	return &dirdiff.Compare{
		Mode:       mode,
		BufferSize: rootCmd.bufSize,
		Logger: slog.New(slog.NewTextHandler(
			cmd.ErrOrStderr(),
			&slog.HandlerOptions{Level: level},
		)),
	}
}
