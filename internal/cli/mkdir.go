package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/color"
	"github.com/fsops-project/fsops/pkg/fsops"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <dir>",
	Short: "Create a directory and any missing ancestors",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fsops.MakeDirectory(args[0]); err != nil {
			fmtErr("mkdir %s: %v", args[0], err)
			os.Exit(1)
		}
		if !jsonOutput {
			fmt.Println(color.Success("created " + args[0]))
		}
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}
