package score

// #region verdict

// Verdict is the final band for an evaluation. Rejected is produced only
// by the fatal-pattern screener; the aggregator maps scores onto the
// other three bands.
type Verdict string

const (
	VerdictRejected   Verdict = "rejected"
	VerdictWeak       Verdict = "weak"
	VerdictAcceptable Verdict = "acceptable"
	VerdictStrong     Verdict = "strong"
)

// #endregion verdict

// #region config

// ScoreConfig holds the aggregation weights and band cutoffs. The score
// scale is 0-100. Positive weights are the points a signal contributes at
// its maximum value; negative contributions are expressed as penalty
// weights subtracted in proportion to the signal.
type ScoreConfig struct {
	WeightDiversity float64 // points at full 4-class diversity
	WeightEntropy   float64 // points at normalized entropy 1.0
	WeightLength    float64 // points at the length-bonus cap
	WeightUnique    float64 // points at unique ratio 1.0

	BonusWordish  float64 // flat points for a pronounceable segment
	BonusInnerMix float64 // flat points for digits/symbols inside words

	WeightConfusable  float64 // points subtracted at confusable density 1.0
	WeightRepeat      float64 // points subtracted at repeat coverage 1.0
	PenaltyYearSuffix float64 // flat points subtracted for a 19xx/20xx tail

	// Band cutoffs partition [0, 100]: weak below WeakCutoff, acceptable
	// from WeakCutoff up to but excluding StrongCutoff, strong from
	// StrongCutoff. Each band includes its lower bound, so a score landing
	// exactly on a cutoff takes the higher band.
	WeakCutoff   float64
	StrongCutoff float64
}

// DefaultScoreConfig returns the documented default weights.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		WeightDiversity:   25,
		WeightEntropy:     25,
		WeightLength:      15,
		WeightUnique:      10,
		BonusWordish:      10,
		BonusInnerMix:     5,
		WeightConfusable:  30,
		WeightRepeat:      30,
		PenaltyYearSuffix: 10,
		WeakCutoff:        40,
		StrongCutoff:      70,
	}
}

// #endregion config

// #region component

// Component is one named term of the aggregated score, kept for
// explainability.
type Component struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// #endregion component

// #region outcome

// Outcome is the aggregator's output: the clamped score, its band, and
// the per-term breakdown.
type Outcome struct {
	Score      float64     `json:"score"`
	Verdict    Verdict     `json:"verdict"`
	Components []Component `json:"components"`
}

// #endregion outcome
