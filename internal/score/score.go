package score

import (
	"github.com/rmwaite/passgate/internal/signals"
)

// #region aggregator

// Aggregator combines a signal tuple into a single 0-100 score and maps
// it onto a verdict band.
type Aggregator struct {
	config ScoreConfig
}

// NewAggregator creates an aggregator with the given weights.
func NewAggregator(config ScoreConfig) *Aggregator {
	return &Aggregator{config: config}
}

// #endregion aggregator

// #region aggregate

// Aggregate computes the weighted sum of signals, clamps it to [0, 100],
// and assigns the band. Total over its input domain: no error paths.
func (a *Aggregator) Aggregate(sig signals.Signals) Outcome {
	c := a.config
	var components []Component
	add := func(name string, value float64) float64 {
		components = append(components, Component{Name: name, Value: value})
		return value
	}

	raw := add("diversity", c.WeightDiversity*float64(sig.ClassDiversity)/4.0)
	raw += add("entropy", c.WeightEntropy*sig.EntropyEstimate)
	raw += add("length", c.WeightLength*sig.LengthBonus)
	raw += add("unique", c.WeightUnique*sig.UniqueRatio)
	if sig.Wordish {
		raw += add("wordish", c.BonusWordish)
	}
	if sig.InnerMix {
		raw += add("inner_mix", c.BonusInnerMix)
	}
	raw += add("confusable", -c.WeightConfusable*sig.ConfusableDensity)
	raw += add("repeat_runs", -c.WeightRepeat*sig.RepeatRunPenalty)
	if sig.YearSuffix {
		raw += add("year_suffix", -c.PenaltyYearSuffix)
	}

	final := clamp(raw)
	return Outcome{
		Score:      final,
		Verdict:    bandFor(final, c),
		Components: components,
	}
}

// #endregion aggregate

// #region helpers

// bandFor maps a clamped score to its band. Lower bounds are inclusive:
// exactly WeakCutoff is acceptable, exactly StrongCutoff is strong.
func bandFor(score float64, c ScoreConfig) Verdict {
	switch {
	case score >= c.StrongCutoff:
		return VerdictStrong
	case score >= c.WeakCutoff:
		return VerdictAcceptable
	default:
		return VerdictWeak
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// #endregion helpers
