package main

import (
	"eventc/pkg/lib"
)

const appName = "eventc"

var (
	flagSheetFile      string
	flagExtensionFiles []string
	flagOutputFile     string
	flagPlatform       string
	flagPick           bool
)

func main() {
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(instructionsCmd)

	compileCmd.Flags().StringVarP(&flagSheetFile, "file", "f", "",
		"event sheet YAML file (required)")
	compileCmd.Flags().StringArrayVarP(&flagExtensionFiles, "extensions", "e", nil,
		"platform extension YAML file (repeatable)")
	compileCmd.Flags().StringVarP(&flagOutputFile, "output", "o", "",
		"write generated code to this file instead of stdout")
	_ = compileCmd.MarkFlagRequired("file")

	instructionsCmd.Flags().StringArrayVarP(&flagExtensionFiles, "extensions", "e", nil,
		"platform extension YAML file (repeatable)")
	instructionsCmd.Flags().StringVar(&flagPlatform, "platform", defaultPlatform,
		"platform name the extensions are registered for")
	instructionsCmd.Flags().BoolVar(&flagPick, "pick", false,
		"pick one instruction interactively and print its signature")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		lib.Exit(err)
	}
}
