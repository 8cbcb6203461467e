// Package adapter provides the thin CLI adapter over the core engine.
package adapter

import (
	"context"
	"io"
	"os"

	"interest-calc/core/engine"
	"interest-calc/core/output"
	"interest-calc/internal/errors"
)

// CLIAdapter handles input/output only - all logic is in the engine.
type CLIAdapter struct {
	engine    *engine.Engine
	formatter output.Formatter
	output    io.Writer
}

// NewCLIAdapter creates a new CLI adapter writing text to stdout
func NewCLIAdapter(eng *engine.Engine) *CLIAdapter {
	return &CLIAdapter{
		engine:    eng,
		formatter: &output.TextFormatter{},
		output:    os.Stdout,
	}
}

// SetOutput sets the output writer
func (a *CLIAdapter) SetOutput(w io.Writer) {
	a.output = w
}

// SetFormatter sets the output formatter
func (a *CLIAdapter) SetFormatter(f output.Formatter) {
	a.formatter = f
}

// CLIRequest is the CLI input, one raw string per form field
type CLIRequest struct {
	Principal string
	Rate      string
	Years     string
}

// Run submits the request and renders the outcome.
// Invalid input is rendered and then returned as an input error so the
// caller can set a non-zero exit status.
func (a *CLIAdapter) Run(ctx context.Context, req *CLIRequest) (engine.Outcome, error) {
	outcome := a.engine.Submit(ctx, engine.Form{
		Principal: req.Principal,
		Rate:      req.Rate,
		Period:    req.Years,
	})

	if err := a.formatter.Render(a.output, outcome); err != nil {
		return outcome, errors.Internal("failed to write output", err)
	}
	if !outcome.OK() {
		return outcome, errors.New(outcome.Kind, outcome.Error)
	}
	return outcome, nil
}
