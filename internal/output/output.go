package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted output to a writer.
// Normal output goes to w; errors go to errW.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewPrinter creates a new Printer.
// If isTTY is true, colors will be enabled.
func NewPrinter(writer io.Writer, isTTY bool) *Printer {
	styles := &Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
	}

	// Disable colors if not a TTY
	if !isTTY {
		styles.Error = lipgloss.NewStyle()
		styles.Success = lipgloss.NewStyle()
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		styles: styles,
	}
}

// WithStderr sets a separate writer for errors.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// Success writes a styled message line to the main writer.
func (p *Printer) Success(format string, args ...any) {
	mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(fmt.Sprintf(format, args...))))
}

// Error writes "Error: <message>" to the error writer.
// The message includes the wrapped cause, if any.
func (p *Printer) Error(err error) {
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), err.Error()))
}

// mustWrite panics if a write operation fails.
// Use this to wrap write operations that should never fail
// (e.g., writing to stdout/stderr or buffers).
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
