// Package engine runs one form submission: validate, then calculate.
// CLI, HTTP and desktop front-ends are thin wrappers around it.
package engine

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"interest-calc/core/interest"
	"interest-calc/internal/errors"
)

// Form holds the raw text of the three input fields
type Form struct {
	Principal string `json:"principal"`
	Rate      string `json:"rate"`
	Period    string `json:"period"`
}

// Outcome is what a front-end displays after a submission.
// Exactly one of Error and Result is non-empty; the other area is cleared.
type Outcome struct {
	// Error is the validation message, empty on success
	Error string `json:"error,omitempty"`

	// Kind is the error kind, empty on success
	Kind errors.Kind `json:"kind,omitempty"`

	// Result is the formatted interest, empty on failure
	Result string `json:"result,omitempty"`

	// Request is the validated input, nil on failure
	Request *interest.CalculationRequest `json:"request,omitempty"`

	// Interest is the unrounded amount, zero on failure
	Interest decimal.Decimal `json:"interest"`
}

// OK reports whether the submission produced a result
func (o Outcome) OK() bool {
	return o.Error == ""
}

// Engine is stateless apart from its logger and safe for concurrent use
type Engine struct {
	logger *zap.Logger
}

// New creates an engine. A nil logger disables logging.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Submit handles a single trigger of the form.
// The context only carries request-scoped values; nothing here blocks.
func (e *Engine) Submit(ctx context.Context, form Form) Outcome {
	e.logger.Debug("form submitted",
		zap.String("principal", form.Principal),
		zap.String("rate", form.Rate),
		zap.String("period", form.Period),
	)

	req, err := interest.Parse(form.Principal, form.Rate, form.Period)
	if err != nil {
		kind := errors.KindOf(err)
		e.logger.Info("input rejected", zap.String("kind", string(kind)), zap.Error(err))
		return Outcome{Error: errors.Message(err), Kind: kind}
	}

	amount := interest.Interest(req)
	result := interest.Format(amount)
	e.logger.Debug("interest calculated", zap.String("result", result))

	return Outcome{
		Result:   result,
		Request:  &req,
		Interest: amount,
	}
}
