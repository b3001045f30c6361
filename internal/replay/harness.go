package replay

import (
	"github.com/rmwaite/passgate/internal/evaluate"
	"github.com/rmwaite/passgate/internal/score"
	"github.com/rmwaite/passgate/internal/screen"
)

// #region types

// CaseResult captures the outcome of replaying one recorded case.
type CaseResult struct {
	ID       string        `json:"id"`
	Expected string        `json:"expected"`
	Actual   score.Verdict `json:"actual"`
	Reason   screen.Reason `json:"reason,omitempty"`
	Score    *float64      `json:"score,omitempty"`
	Pass     bool          `json:"pass"`
	Note     string        `json:"note,omitempty"`
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// #endregion types

// #region replay

// ExpectedAccepted is the band-set expectation: the case passes when the
// evaluator lands it in either non-weak scoring band. Recorded corpora
// rarely pin which of the two an accepted password fell into.
const ExpectedAccepted = "accepted"

func verdictMatches(expected string, actual score.Verdict) bool {
	if expected == ExpectedAccepted {
		return actual == score.VerdictAcceptable || actual == score.VerdictStrong
	}
	return expected == string(actual)
}

// Replay evaluates every case with an evaluator built from the fixture's
// config and compares verdicts (and reasons, when the case pins one).
// Operates entirely in-memory.
func Replay(fixture Fixture) ([]CaseResult, Summary) {
	evaluator := evaluate.NewEvaluator(fixture.EvaluatorConfig())

	results := make([]CaseResult, 0, len(fixture.Cases))
	summary := Summary{Total: len(fixture.Cases)}

	for _, c := range fixture.Cases {
		r := evaluator.Evaluate(c.Password)

		pass := verdictMatches(c.ExpectedVerdict, r.Verdict)
		if pass && c.ExpectedReason != "" {
			pass = string(r.Reason) == c.ExpectedReason
		}

		results = append(results, CaseResult{
			ID:       c.ID,
			Expected: c.ExpectedVerdict,
			Actual:   r.Verdict,
			Reason:   r.Reason,
			Score:    r.Score,
			Pass:     pass,
			Note:     c.Note,
		})
		if pass {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}
	return results, summary
}

// #endregion replay
