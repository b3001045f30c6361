package signals

// #region signals

// Signals is the fixed tuple of measurements computed over a password that
// already passed the fatal-pattern screener. Retained on the evaluation
// result for explainability.
type Signals struct {
	// ClassDiversity counts distinct character classes present among
	// lowercase, uppercase, digit, symbol. Integer 0-4.
	ClassDiversity int `json:"class_diversity"`

	// ConfusableDensity is the fraction of characters that belong to a
	// configured lookalike group (O/0, 1/l/I, ...). Range [0, 1].
	ConfusableDensity float64 `json:"confusable_density"`

	// RepeatRunPenalty is the fraction of the password covered by runs of
	// length >= RunLength of one repeated character or an alternating
	// two-character cycle ("ababab"). Range [0, 1].
	RepeatRunPenalty float64 `json:"repeat_run_penalty"`

	// EntropyEstimate is Shannon entropy of the character distribution in
	// bits per character, normalized by log2 of the distinct-character
	// count so the value stays in [0, 1] regardless of length.
	EntropyEstimate float64 `json:"entropy_estimate"`

	// LengthBonus rewards length beyond the minimum, one point per extra
	// character up to LengthBonusCap, stored as a fraction of the cap so
	// the value stays in [0, 1].
	LengthBonus float64 `json:"length_bonus"`

	// UniqueRatio is distinct characters over total characters.
	UniqueRatio float64 `json:"unique_ratio"`

	// InnerMix is set when a digit or symbol sits strictly between
	// letters, a sign of intentional placement rather than a lazy suffix.
	InnerMix bool `json:"inner_mix"`

	// Wordish is set when the password contains a pronounceable segment
	// or a CamelCase hump.
	Wordish bool `json:"wordish"`

	// YearSuffix is set when the password ends in a 19xx/20xx year.
	YearSuffix bool `json:"year_suffix"`
}

// #endregion signals

// #region config

// ScanConfig holds tuning knobs and tables for signal computation.
type ScanConfig struct {
	// ConfusableGroups enumerates lookalike groups, one string per group.
	// Membership is literal: lowercase b is not in the "8B" group.
	ConfusableGroups []string

	// MinLength is the baseline for the length bonus; matches the
	// screener's minimum so the bonus starts at zero for minimal input.
	MinLength int

	// LengthBonusCap bounds the length bonus in characters beyond minimum.
	LengthBonusCap int

	// RunLength is the minimum run counted by RepeatRunPenalty.
	RunLength int
}

// DefaultScanConfig returns sensible defaults.
func DefaultScanConfig() ScanConfig {
	return ScanConfig{
		ConfusableGroups: []string{"0O", "1lI", "5S", "8B", "2Z", "6G"},
		MinLength:        8,
		LengthBonusCap:   8,
		RunLength:        3,
	}
}

// #endregion config
