package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/drill/internal/version"
)

var versionDetailed bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the drill version. Use --detailed to include the git commit
and build metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Resolve()
		if versionDetailed {
			fmt.Println(info.Detailed())
		} else {
			fmt.Println(info.Short())
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&versionDetailed, "detailed", "d", false, "Show detailed version information")
}
