package main

import (
	"github.com/spf13/cobra"
)

// defaultPlatform is assumed when a sheet does not name its target
// platform.
const defaultPlatform = "base"

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Compile visual event sheets into target source code",
	Long: "Compile visual event sheets into target source code.\n\n" +
		"Instruction metadata is loaded from platform extension files; the\n" +
		"sheet's events, objects and groups come from the sheet file itself.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}
