package ui

import (
	"fmt"
	"io"
	"strings"
)

// Level tags printed in front of every CLI log line.
const (
	TagDebug   = "[DEBUG]:"
	TagInfo    = "[INFO]:"
	TagSuccess = "[SUCCESS]:"
	TagWarning = "[WARNING]:"
	TagError   = "[ERROR]:"
)

// Success prints a green "[SUCCESS]: text" line.
func Success(w io.Writer, text string) {
	fmt.Fprintln(w, RenderSuccess(TagSuccess+" "+text))
}

// Warning prints a yellow "[WARNING]: text" line.
func Warning(w io.Writer, text string) {
	fmt.Fprintln(w, RenderWarning(TagWarning+" "+text))
}

// Print prints plain text
func Print(w io.Writer, text string) {
	fmt.Fprintln(w, text)
}

// Indent returns text with indentation
func Indent(text string, level int) string {
	return strings.Repeat("  ", level) + text
}

// Render functions - return styled string without printing (for composition)

func RenderInfo(text string) string {
	return InfoStyle.Render(text)
}

func RenderSuccess(text string) string {
	return SuccessStyle.Render(text)
}

func RenderWarning(text string) string {
	return WarningStyle.Render(text)
}

func RenderError(text string) string {
	return ErrorStyle.Render(text)
}

func RenderDim(text string) string {
	return DimStyle.Render(text)
}

func RenderStep(text string) string {
	return StepStyle.Render(text)
}

func RenderCode(text string) string {
	return CodeStyle.Render(text)
}

func RenderURL(text string) string {
	return URLStyle.Render(text)
}

// RenderLevel maps a zerolog level name to its colored tag.
func RenderLevel(level string) string {
	switch level {
	case "debug", "trace":
		return RenderDim(TagDebug)
	case "warn":
		return RenderWarning(TagWarning)
	case "error", "fatal", "panic":
		return RenderError(TagError)
	default:
		return RenderInfo(TagInfo)
	}
}
