// Package ui writes user-facing messages. Styling comes from lipgloss and is
// dropped automatically when the writer is not a color terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Console writes styled lines to one writer.
type Console struct {
	w io.Writer

	heading lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

// New creates a Console for w. Color support is detected from w itself.
func New(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:       w,
		heading: r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("40")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("214")),
		fail:    r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		dim:     r.NewStyle().Foreground(lipgloss.Color("244")),
		accent:  r.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// Writer returns the underlying writer.
func (c *Console) Writer() io.Writer { return c.w }

// Heading prints a title underlined with '='.
func (c *Console) Heading(title string) {
	fmt.Fprintln(c.w, c.heading.Render(title))
	fmt.Fprintln(c.w, strings.Repeat("=", len(title)+1))
}

// Println prints a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.w, a...)
}

// Printf prints plain formatted text.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.w, format, a...)
}

// Success prints a line in the success color.
func (c *Console) Success(format string, a ...any) {
	fmt.Fprintln(c.w, c.success.Render(fmt.Sprintf(format, a...)))
}

// Warn prints a line in the warning color.
func (c *Console) Warn(format string, a ...any) {
	fmt.Fprintln(c.w, c.warn.Render(fmt.Sprintf(format, a...)))
}

// Error prints a line in the error color.
func (c *Console) Error(format string, a ...any) {
	fmt.Fprintln(c.w, c.fail.Render(fmt.Sprintf(format, a...)))
}

// Dim prints a de-emphasized line.
func (c *Console) Dim(format string, a ...any) {
	fmt.Fprintln(c.w, c.dim.Render(fmt.Sprintf(format, a...)))
}

// Path highlights a filesystem path inside a sentence.
func (c *Console) Path(p string) string {
	return c.accent.Render(p)
}

// Status prints a doctor-style line such as "  [ OK ] python3 3.12.1".
func (c *Console) Status(tag, format string, a ...any) {
	label := "[" + tag + "]"
	switch strings.TrimSpace(tag) {
	case "OK":
		label = c.success.Render(label)
	case "WARN", "MISS":
		label = c.warn.Render(label)
	case "FAIL":
		label = c.fail.Render(label)
	}
	fmt.Fprintf(c.w, "  %s %s\n", label, fmt.Sprintf(format, a...))
}
