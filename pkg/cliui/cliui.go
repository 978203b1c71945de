// Package cliui provides reusable terminal UI helpers (styles, tables,
// markdown rendering, JSON output) for moltbook CLI commands.
package cliui

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	SuccessMark = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Render("✓")
	FailMark    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")

	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	NameStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	KeyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Truncate is a simple string truncate
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// RenderMarkdown renders markdown content for terminal display using glamour.
func RenderMarkdown(content string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return content, err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content, err
	}

	return rendered, nil
}

// PrintJSON pretty-prints a raw JSON payload to w. Invalid payloads are
// written as-is so API responses always pass through.
func PrintJSON(w io.Writer, raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		_, werr := w.Write(raw)
		return werr
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// MarshalJSON pretty-prints any value as JSON to w. Used for locally
// assembled output such as config show and heartbeat.
func MarshalJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// hinter is implemented by errors that carry remediation text.
type hinter interface {
	Hint() string
}

// errorObject is the structured form of a failure in --json mode, shaped
// like the API's own error envelope so automated callers parse one format.
type errorObject struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Hint    string `json:"hint,omitempty"`
}

// PrintError renders err to w at the command boundary. In JSON mode the
// error becomes a structured object; otherwise a styled human-readable line
// plus the hint when one exists.
func PrintError(w io.Writer, err error, asJSON bool) {
	var hint string
	var h hinter
	if errors.As(err, &h) {
		hint = h.Hint()
	}

	if asJSON {
		_ = MarshalJSON(w, errorObject{Success: false, Error: err.Error(), Hint: hint})
		return
	}

	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), err.Error())
	if hint != "" {
		fmt.Fprintf(w, "%s\n", DimStyle.Render(hint))
	}
}
