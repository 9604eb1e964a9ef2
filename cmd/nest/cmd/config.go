package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/go-nest/config"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a packing settings file",
	Long: `Create a packing settings file in YAML format, prefilled with
default values.

If FILE is not provided, 'nest.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "nest.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		if ok, err := confirmIfExists(path,
			fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path)); !ok {
			if err == nil {
				fmt.Println("aborted by user...")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		if err := config.Save(path, config.NewOptions()); err != nil {
			check(err)
		}
		fmt.Printf("packing settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
