package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at release time via -ldflags; it stays "dev" otherwise.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the nest version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("nest", version)
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
