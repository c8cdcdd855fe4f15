package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/fsops"
)

var readLines bool

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Print a file's contents (or its lines with --lines)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if readLines {
			lines, err := fsops.ReadLines(args[0], fsops.ModeText)
			if err != nil {
				fmtErr("read %s: %v", args[0], err)
				os.Exit(1)
			}
			if jsonOutput {
				outputJSON(lines)
				return
			}
			for i, line := range lines {
				fmt.Printf("%6d\t%s", i+1, line)
			}
			return
		}

		content, err := fsops.ReadContents(args[0])
		if err != nil {
			fmtErr("read %s: %v", args[0], err)
			os.Exit(1)
		}
		if jsonOutput {
			outputJSON(content)
			return
		}
		fmt.Print(content)
	},
}

func init() {
	readCmd.Flags().BoolVar(&readLines, "lines", false, "print numbered lines")
	rootCmd.AddCommand(readCmd)
}
