package screen

// #region reason

// Reason identifies which fatal pattern matched.
type Reason string

const (
	ReasonTooShort          Reason = "too_short"
	ReasonTooLong           Reason = "too_long"
	ReasonDenylisted        Reason = "denylisted"
	ReasonAllIdenticalChars Reason = "all_identical_chars"
	ReasonRepeatingUnit     Reason = "repeating_unit"
	ReasonSequentialRun     Reason = "sequential_run"
	ReasonKeyboardRun       Reason = "keyboard_run"
)

// #endregion reason

// #region match

// Match is the outcome of a screener pass. Matched false means no fatal
// pattern was found and the password continues to scoring.
type Match struct {
	Matched bool
	Reason  Reason
	Detail  string // which entry/run triggered, for diagnostics
}

// #endregion match

// #region config

// ScreenConfig holds the fatal-pattern tables and thresholds.
// All tables are data, not code: appending an entry adds a pattern.
type ScreenConfig struct {
	MinLength int // below this, reject with too_short
	MaxLength int // above this, reject with too_long

	// Denylist entries merged over the embedded default list.
	// Matching is case-insensitive and exact unless DenySubstrings is set,
	// in which case containing an entry also rejects.
	Denylist       []string
	DenySubstrings bool

	// SequentialRunLength is the minimum run length for both the
	// alphanumeric-order and keyboard-row checks.
	SequentialRunLength int

	// Sequences are the ordered alphabets scanned for monotonic runs.
	// Empty slice disables the check.
	Sequences []string

	// KeyboardRows are physical-adjacency rows scanned case-insensitively
	// in both directions. Empty slice disables the check.
	KeyboardRows []string

	// MaxRepeatUnit enables rejection of whole-string repetitions of a
	// short unit ("abababab") up to this unit length. 0 disables the check;
	// alternations are then handled by the repeat-run score penalty instead.
	MaxRepeatUnit int
}

// DefaultScreenConfig returns the standard screening tables.
func DefaultScreenConfig() ScreenConfig {
	return ScreenConfig{
		MinLength:           8,
		MaxLength:           128,
		SequentialRunLength: 4,
		Sequences: []string{
			"abcdefghijklmnopqrstuvwxyz",
			"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			"0123456789",
		},
		KeyboardRows: []string{
			"qwertyuiop",
			"asdfghjkl",
			"zxcvbnm",
		},
		MaxRepeatUnit: 0,
	}
}

// #endregion config
