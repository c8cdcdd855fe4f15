package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/fsops"
)

var treeDirs bool

var treeCmd = &cobra.Command{
	Use:   "tree <dir>",
	Short: "Recursively list files (or directories with --dirs)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			paths []string
			err   error
		)
		if treeDirs {
			paths, err = fsops.ListSubdirectories(args[0])
		} else {
			paths, err = fsops.ListFiles(args[0])
		}
		if err != nil {
			fmtErr("tree %s: %v", args[0], err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(paths)
			return
		}
		for _, p := range paths {
			fmt.Println(p)
		}
	},
}

func init() {
	treeCmd.Flags().BoolVar(&treeDirs, "dirs", false, "list directories instead of files")
	rootCmd.AddCommand(treeCmd)
}
