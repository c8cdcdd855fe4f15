package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/color"
	"github.com/fsops-project/fsops/pkg/fsops"
)

var listCmd = &cobra.Command{
	Use:   "list <dir>",
	Short: "List the immediate children of a directory, sorted by path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		entries, err := fsops.ListDirectory(args[0])
		if err != nil {
			fmtErr("list %s: %v", args[0], err)
			os.Exit(1)
		}

		if jsonOutput {
			outputJSON(entries)
			return
		}
		for _, entry := range entries {
			fmt.Printf("%s\t%s\n", color.Path(entry.Path), entry.Name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
