package main

import (
	"fmt"
	"strings"

	"eventc/cmd/eventc/codegen"

	"github.com/charmbracelet/lipgloss"
)

// renderReport formats the side-channel results of a generation run for
// the terminal: the advisory error flag, the diagnostics, the accumulated
// includes and the recorded maxima.
func renderReport(gen *codegen.Generator) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	labelStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	warnStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("GENERATION REPORT") + "\n")

	if gen.ErrorOccurred() {
		b.WriteString(labelStyle.Render("Status:") + " " + warnStyle.Render("errors occurred") + "\n")
	} else {
		b.WriteString(labelStyle.Render("Status:") + " " + okStyle.Render("ok") + "\n")
	}

	for _, diag := range gen.Diagnostics() {
		b.WriteString(warnStyle.Render("warning:") + " " + diag + "\n")
	}

	if includes := gen.IncludeFiles(); len(includes) > 0 {
		b.WriteString(labelStyle.Render("Includes:") + " " + strings.Join(includes, ", ") + "\n")
	}
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("Max custom conditions depth:"), gen.MaxCustomConditionsDepth())
	fmt.Fprintf(&b, "%s %d", labelStyle.Render("Max conditions list size:"), gen.MaxConditionsListsSize())

	return lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1).Render(b.String())
}
