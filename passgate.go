// Package passgate evaluates candidate passwords. A fixed set of fatal
// patterns (denylist hits, identical or sequential runs, length bounds)
// rejects outright; everything else gets a 0-100 quality score built from
// character-class diversity, normalized Shannon entropy, length, and
// penalties for confusable characters and repetitive runs, then lands in
// a weak / acceptable / strong band.
//
// Evaluation is pure and reentrant: configuration is immutable after
// construction and nothing about the password is retained.
package passgate

import (
	"github.com/rmwaite/passgate/internal/evaluate"
	"github.com/rmwaite/passgate/internal/score"
	"github.com/rmwaite/passgate/internal/screen"
	"github.com/rmwaite/passgate/internal/signals"
)

// #region exported-types

// Evaluator runs the screen, scan, and score pipeline.
type Evaluator = evaluate.Evaluator

// Config bundles the configuration for all three pipeline stages.
type Config = evaluate.Config

// Result is the output record for one evaluation.
type Result = evaluate.Result

// Signals is the intermediate measurement tuple kept on the result.
type Signals = signals.Signals

// Verdict is the final band for an evaluation.
type Verdict = score.Verdict

// Verdict bands. Rejected carries a Reason instead of a score.
const (
	VerdictRejected   = score.VerdictRejected
	VerdictWeak       = score.VerdictWeak
	VerdictAcceptable = score.VerdictAcceptable
	VerdictStrong     = score.VerdictStrong
)

// Reason identifies which fatal pattern matched.
type Reason = screen.Reason

// Fatal-pattern reason codes.
const (
	ReasonTooShort          = screen.ReasonTooShort
	ReasonTooLong           = screen.ReasonTooLong
	ReasonDenylisted        = screen.ReasonDenylisted
	ReasonAllIdenticalChars = screen.ReasonAllIdenticalChars
	ReasonRepeatingUnit     = screen.ReasonRepeatingUnit
	ReasonSequentialRun     = screen.ReasonSequentialRun
	ReasonKeyboardRun       = screen.ReasonKeyboardRun
)

// #endregion exported-types

// #region constructors

// DefaultConfig returns the documented default tables, weights, and
// cutoffs for all three stages.
func DefaultConfig() Config {
	return evaluate.DefaultConfig()
}

// New builds an evaluator with the given configuration.
func New(config Config) *Evaluator {
	return evaluate.NewEvaluator(config)
}

// #endregion constructors

// #region evaluate

var defaultEvaluator = evaluate.NewEvaluator(evaluate.DefaultConfig())

// Evaluate runs one password through the default-configured pipeline.
// Safe for concurrent use.
func Evaluate(password string) Result {
	return defaultEvaluator.Evaluate(password)
}

// #endregion evaluate
