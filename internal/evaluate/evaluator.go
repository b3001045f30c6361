package evaluate

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/rmwaite/passgate/internal/score"
	"github.com/rmwaite/passgate/internal/screen"
	"github.com/rmwaite/passgate/internal/signals"
)

// #region evaluator

// Evaluator runs the three-stage pipeline: fatal-pattern screen, signal
// scan, score aggregation. Configuration is immutable after construction,
// so one Evaluator may be shared across goroutines.
type Evaluator struct {
	config     Config
	screener   *screen.Screener
	scanner    *signals.Scanner
	aggregator *score.Aggregator
}

// NewEvaluator builds an evaluator from the given configuration.
func NewEvaluator(config Config) *Evaluator {
	return &Evaluator{
		config:     config,
		screener:   screen.NewScreener(config.Screen),
		scanner:    signals.NewScanner(config.Scan),
		aggregator: score.NewAggregator(config.Score),
	}
}

// Config returns the configuration the evaluator was built with.
func (e *Evaluator) Config() Config {
	return e.config
}

// #endregion evaluator

// #region evaluate

// Evaluate screens, scans, and scores one candidate password. Pure and
// total: every string input maps to a result, never an error.
func (e *Evaluator) Evaluate(password string) Result {
	normalized := Normalize(password)

	if m := e.screener.Screen(normalized); m.Matched {
		return Result{Verdict: score.VerdictRejected, Reason: m.Reason}
	}

	sig := e.scanner.Scan(normalized)
	out := e.aggregator.Aggregate(sig)
	return Result{
		Verdict: out.Verdict,
		Score:   &out.Score,
		Signals: &sig,
	}
}

// Explain runs the pipeline and additionally returns the per-term score
// breakdown for passwords that reach the aggregator.
func (e *Evaluator) Explain(password string) (Result, []score.Component) {
	normalized := Normalize(password)

	if m := e.screener.Screen(normalized); m.Matched {
		return Result{Verdict: score.VerdictRejected, Reason: m.Reason}, nil
	}

	sig := e.scanner.Scan(normalized)
	out := e.aggregator.Aggregate(sig)
	return Result{
		Verdict: out.Verdict,
		Score:   &out.Score,
		Signals: &sig,
	}, out.Components
}

// #endregion evaluate

// #region normalize

// Normalize applies NFKC so visually equivalent input compares equal, then
// strips leading/trailing CR/LF left behind by copy-paste. Interior
// whitespace is preserved: spaces inside a passphrase are legitimate.
func Normalize(password string) string {
	return strings.Trim(norm.NFKC.String(password), "\r\n")
}

// #endregion normalize
