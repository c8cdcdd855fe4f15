package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/color"
	"github.com/fsops-project/fsops/pkg/fsops"
)

var (
	removeIgnoreErrors bool
	deleteMustExist    bool
)

var removeCmd = &cobra.Command{
	Use:   "remove <dir>",
	Short: "Recursively remove a directory, retrying transient failures",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fsops.RemoveDirectory(args[0], removeIgnoreErrors); err != nil {
			fmtErr("remove %s: %v", args[0], err)
			os.Exit(1)
		}
		if !jsonOutput {
			fmt.Println(color.Success("removed " + args[0]))
		}
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <file>",
	Short: "Delete a single file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := fsops.DeleteFile(args[0], deleteMustExist); err != nil {
			fmtErr("delete %s: %v", args[0], err)
			os.Exit(1)
		}
		if !jsonOutput {
			fmt.Println(color.Success("deleted " + args[0]))
		}
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeIgnoreErrors, "ignore-errors", false,
		"suppress errors and remove as much as possible")
	deleteCmd.Flags().BoolVar(&deleteMustExist, "must-exist", false,
		"fail when the file does not exist")
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(deleteCmd)
}
