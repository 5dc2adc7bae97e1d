// Package cliui provides colored terminal status output for skillrouter's
// CLI commands.
package cliui

import "github.com/fatih/color"

var (
	// Success is used for a resolved route (green).
	Success = color.New(color.FgGreen).SprintFunc()
	// Failure is used for an Error route or a hard failure (red).
	Failure = color.New(color.FgRed).SprintFunc()
	// Caution is used for routing warnings, e.g. a dependency cycle (yellow).
	Caution = color.New(color.FgYellow).SprintFunc()
	// Info is used for tier/confidence annotations (cyan).
	Info = color.New(color.FgCyan).SprintFunc()
	// Bold is used for emphasis.
	Bold = color.New(color.Bold).SprintFunc()
	// Dim is used for secondary detail, e.g. execution order.
	Dim = color.New(color.Faint).SprintFunc()
)

// Symbols for route outcomes.
const (
	SymbolMatched = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
)

// StatusMatched returns a green check with a message, for a resolved route.
func StatusMatched(msg string) string {
	return Success(SymbolMatched) + " " + msg
}

// StatusError returns a red X with a message, for an Error route.
func StatusError(msg string) string {
	return Failure(SymbolError) + " " + msg
}

// StatusWarning returns a yellow warning with a message, e.g. a dependency cycle.
func StatusWarning(msg string) string {
	return Caution(SymbolWarning) + " " + msg
}

// DisableColors turns off all color output, for piped or non-TTY output.
func DisableColors() {
	color.NoColor = true
}
