package ui

import (
	"github.com/fatih/color"
)

// Color definitions for consistent styling across the UI.
var (
	// Start message: tomato red
	colorStart = color.New(color.FgRed, color.Bold)

	// Summary: green for time well spent
	colorSummary = color.New(color.FgGreen)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatStart(s string) string {
	return colorStart.Sprint(s)
}

func formatSummary(s string) string {
	return colorSummary.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
