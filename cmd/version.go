package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/binres-gen/binres-gen/version"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the binres-gen version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("binres-gen " + version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
