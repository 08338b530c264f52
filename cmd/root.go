package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

func SetVersion(v string) {
	appVersion = v
}

var rootCmd = &cobra.Command{
	Use:   "magnet",
	Short: "Turn any program's --help output into an interactive command builder",
	Long: "magnet parses a program's help output into a menu of options,\n" +
		"lets you assemble a command line step by step, and runs the result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.SetVersionTemplate(fmt.Sprintf("magnet v%s\n", appVersion))
}

func Execute() error {
	rootCmd.Version = appVersion
	return rootCmd.Execute()
}
