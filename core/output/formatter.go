// Package output renders submission outcomes for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"interest-calc/core/engine"
	"interest-calc/core/ui"
)

// Format represents output format type
type Format string

const (
	// FormatText is the plain result or error line
	FormatText Format = "text"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the outcome of one submission
	Render(w io.Writer, outcome engine.Outcome) error
}

// New returns the formatter for a format name
func New(format string, noColor bool) (Formatter, error) {
	switch Format(format) {
	case FormatText, "":
		return &TextFormatter{NoColor: noColor}, nil
	case FormatJSON:
		return &JSONFormatter{Indent: true}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want text or json)", format)
}

// TextFormatter prints exactly the string the form would display
type TextFormatter struct {
	NoColor bool
}

// Format implements Formatter
func (f *TextFormatter) Format() Format { return FormatText }

// Render implements Formatter
func (f *TextFormatter) Render(w io.Writer, outcome engine.Outcome) error {
	tw := ui.NewWriter(w, f.NoColor)
	if !outcome.OK() {
		tw.Error(outcome.Error)
		return nil
	}
	tw.Result(outcome.Result)
	return nil
}

// JSONFormatter emits the whole outcome
type JSONFormatter struct {
	Indent bool
}

// Format implements Formatter
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render implements Formatter
func (f *JSONFormatter) Render(w io.Writer, outcome engine.Outcome) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(outcome)
}
