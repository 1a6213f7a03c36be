// Package ui holds the terminal styles used for status lines. Colors degrade
// to plain text when the output is not a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	ColorOK    = lipgloss.Color("2")
	ColorWarn  = lipgloss.Color("3")
	ColorError = lipgloss.Color("1")
	ColorInfo  = lipgloss.Color("4")
)

var (
	OK    = lipgloss.NewStyle().Foreground(ColorOK)
	Warn  = lipgloss.NewStyle().Foreground(ColorWarn)
	Error = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	Info  = lipgloss.NewStyle().Foreground(ColorInfo)
	Title = lipgloss.NewStyle().Bold(true)
)

// Status tags printed by doctor-style checks.
const (
	TagOK   = "[ OK ]"
	TagMiss = "[MISS]"
	TagWarn = "[WARN]"
	TagFail = "[FAIL]"
)

// Statusf writes an indented status line: the tag is colored by kind, the
// message is plain.
func Statusf(w io.Writer, tag, format string, args ...any) {
	fmt.Fprintf(w, "  %s %s\n", tagStyle(tag).Render(tag), fmt.Sprintf(format, args...))
}

func tagStyle(tag string) lipgloss.Style {
	switch tag {
	case TagOK:
		return OK
	case TagWarn, TagMiss:
		return Warn
	case TagFail:
		return Error
	default:
		return Info
	}
}
