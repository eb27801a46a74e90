package main

import (
	"errors"
	"fmt"
	"os"

	"eventc/cmd/eventc/codegen"
	"eventc/cmd/eventc/sheetyaml"

	"github.com/spf13/cobra"
)

var errGenerationFailed = errors.New("generation completed with errors")

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile an event sheet to source code",
	RunE: func(cmd *cobra.Command, args []string) error {
		sheetBytes, err := os.ReadFile(flagSheetFile)
		if err != nil {
			return err
		}
		sheet, err := sheetyaml.ParseSheet(sheetBytes)
		if err != nil {
			return err
		}
		platform := sheet.Platform
		if platform == "" {
			platform = defaultPlatform
		}

		registry, err := loadExtensions(platform, flagExtensionFiles)
		if err != nil {
			return err
		}

		gen := codegen.NewGenerator(platform, registry, codegen.RawExpressionGenerator{},
			sheet.GlobalObjects, sheet.SceneObjects)
		code := gen.GenerateSceneEventsCode(sheet.Events)

		if flagOutputFile != "" {
			if err := os.WriteFile(flagOutputFile, []byte(code), 0o644); err != nil {
				return err
			}
		} else {
			fmt.Print(code)
		}

		fmt.Fprintln(os.Stderr, renderReport(gen))

		if gen.ErrorOccurred() {
			return errGenerationFailed
		}
		return nil
	},
}

// loadExtensions registers every given extension file into a fresh
// registry for the platform.
func loadExtensions(platform string, files []string) (*codegen.Registry, error) {
	registry := codegen.NewRegistry(platform)
	for _, file := range files {
		in, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := sheetyaml.ParseExtensionInto(registry, in); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
	}
	return registry, nil
}
