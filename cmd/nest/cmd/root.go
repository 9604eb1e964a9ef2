package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "nest",
	Short: "pack irregular 2D parts onto sheets",
	Long: `nest is the command-line application accompanying go-nest:
	- parse shape and sheet documents (SVG),
	- pack shapes onto sheets under translation and discrete rotation,
	- write the placed result back out as SVG,
	- tweak packing settings (YAML config files).`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
