package main

import (
	"fmt"
	"strings"

	"eventc/cmd/eventc/codegen"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"
)

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "List instruction types registered by the extension files",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadExtensions(flagPlatform, flagExtensionFiles)
		if err != nil {
			return err
		}

		var entries []string
		for _, t := range registry.ConditionTypes() {
			entries = append(entries, "condition "+t)
		}
		for _, t := range registry.ActionTypes() {
			entries = append(entries, "action "+t)
		}

		if !flagPick {
			for _, e := range entries {
				fmt.Println(e)
			}
			return nil
		}

		// go-fuzzyfinder opens a terminal UI for fuzzy searching and selection
		idx, err := fuzzyfinder.Find(
			entries,
			func(i int) string {
				return entries[i]
			},
			fuzzyfinder.WithPromptString("Select instruction: "),
		)
		if err != nil {
			return err
		}
		fmt.Println(describeInstruction(registry, entries[idx]))
		return nil
	},
}

// describeInstruction renders the signature of one "condition X"/"action X"
// entry.
func describeInstruction(registry *codegen.Registry, entry string) string {
	category, instructionType, _ := strings.Cut(entry, " ")
	var md *codegen.InstructionMetadata
	var ok bool
	if category == "condition" {
		md, ok = registry.ConditionMetadata(registry.Platform(), instructionType)
	} else {
		md, ok = registry.ActionMetadata(registry.Platform(), instructionType)
	}
	if !ok {
		return entry
	}

	types := make([]string, len(md.Parameters))
	for i, p := range md.Parameters {
		types[i] = p.Type
		if p.SupplementaryInformation != "" {
			types[i] += "<" + p.SupplementaryInformation + ">"
		}
	}
	return fmt.Sprintf("%s %s(%s) -> %s",
		category, instructionType, strings.Join(types, ", "),
		md.CodeExtraInformation.FunctionCallName)
}
