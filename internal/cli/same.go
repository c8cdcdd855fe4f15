package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsops-project/fsops/pkg/fsops"
)

var sameCmd = &cobra.Command{
	Use:   "same <a> <b>",
	Short: "Report whether two paths refer to the same location",
	Long: `Compare two paths after normalization: cleaned, made absolute, and
case-folded where the host filesystem is case-insensitive. Exits 0 when
they match and 1 when they differ.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		same := fsops.SamePath(args[0], args[1])
		if jsonOutput {
			outputJSON(map[string]bool{"same": same})
		} else {
			fmt.Println(same)
		}
		if !same {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sameCmd)
}
