package ui

import "github.com/charmbracelet/lipgloss"

// Validium palette, picked for contrast on dark terminal backgrounds.
const (
	ColorGray500   = "#6C7585"
	ColorBlue300   = "#97C1FF"
	ColorBlue400   = "#639CFF"
	ColorBlue500   = "#2E7BFF"
	ColorGreen400  = "#63D78E"
	ColorRed400    = "#F87171"
	ColorYellow400 = "#F9C424"
	ColorTeal400   = "#80D0C3"
)

var (
	// InfoStyle - informational log lines (Blue 500)
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue500))

	// SuccessStyle - success log lines (Green 400)
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGreen400))

	// WarningStyle - warnings (Yellow 400)
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorYellow400))

	// ErrorStyle - errors (Red 400)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorRed400))

	// DimStyle - debug and secondary text (Gray 500)
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGray500))

	// StepStyle - numbered follow-up instructions (Blue 400)
	StepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue400))

	// CodeStyle - commands and file contents inside instructions (Blue 300)
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorBlue300))

	// URLStyle - links (Teal 400, underlined)
	URLStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color(ColorTeal400))
)
