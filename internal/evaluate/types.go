package evaluate

import (
	"github.com/rmwaite/passgate/internal/score"
	"github.com/rmwaite/passgate/internal/screen"
	"github.com/rmwaite/passgate/internal/signals"
)

// #region config

// Config bundles the three pipeline stage configurations.
type Config struct {
	Screen screen.ScreenConfig
	Scan   signals.ScanConfig
	Score  score.ScoreConfig
}

// DefaultConfig returns defaults for all three stages with the length
// minimum shared between screener and scanner.
func DefaultConfig() Config {
	screenConfig := screen.DefaultScreenConfig()
	scanConfig := signals.DefaultScanConfig()
	scanConfig.MinLength = screenConfig.MinLength
	return Config{
		Screen: screenConfig,
		Scan:   scanConfig,
		Score:  score.DefaultScoreConfig(),
	}
}

// #endregion config

// #region result

// Result is the output record for one evaluation. Score and Signals are
// nil exactly when the verdict is rejected; Reason is set exactly when
// the verdict is rejected.
type Result struct {
	Verdict score.Verdict    `json:"verdict"`
	Reason  screen.Reason    `json:"reason,omitempty"`
	Score   *float64         `json:"score,omitempty"`
	Signals *signals.Signals `json:"signals,omitempty"`
}

// Rejected reports whether the password hit a fatal pattern.
func (r Result) Rejected() bool {
	return r.Verdict == score.VerdictRejected
}

// #endregion result
