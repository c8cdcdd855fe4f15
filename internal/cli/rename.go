package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/color"
	"github.com/fsops-project/fsops/pkg/fsops"
)

var renameCmd = &cobra.Command{
	Use:   "rename <src> <dst>",
	Short: "Move a file, preserving its permission mode",
	Long: `Move a file to a new location. When the destination is on another
volume the move falls back to copying the bytes and deleting the source.
The destination always ends up with the source's permission mode.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fsops.RenameFile(args[0], args[1]); err != nil {
			fmtErr("rename %s to %s: %v", args[0], args[1], err)
			os.Exit(1)
		}
		if !jsonOutput {
			fmt.Printf("%s -> %s\n", args[0], color.Path(args[1]))
		}
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
