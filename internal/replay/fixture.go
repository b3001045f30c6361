package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rmwaite/passgate/internal/evaluate"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a recorded case file.
type Fixture struct {
	Description string         `json:"description"`
	Config      *FixtureConfig `json:"config,omitempty"`
	Cases       []Case         `json:"cases"`
}

// FixtureConfig overrides a subset of evaluator defaults per fixture.
// Nil fields keep the default.
type FixtureConfig struct {
	MinLength      *int     `json:"min_length,omitempty"`
	WeakCutoff     *float64 `json:"weak_cutoff,omitempty"`
	StrongCutoff   *float64 `json:"strong_cutoff,omitempty"`
	ExtraDenylist  []string `json:"extra_denylist,omitempty"`
	DenySubstrings *bool    `json:"deny_substrings,omitempty"`
}

// Case is one recorded password with its expected outcome. ExpectedVerdict
// is either an exact band or "accepted", which matches acceptable and
// strong alike. ExpectedReason is optional; when set it must also match
// on rejection.
type Case struct {
	ID              string `json:"id"`
	Password        string `json:"password"`
	ExpectedVerdict string `json:"expected_verdict"`
	ExpectedReason  string `json:"expected_reason,omitempty"`
	Note            string `json:"note,omitempty"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and parses a fixture file.
func LoadFixture(path string) (Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Cases) == 0 {
		return Fixture{}, fmt.Errorf("fixture %s has no cases", path)
	}
	for i, c := range f.Cases {
		if c.ID == "" {
			return Fixture{}, fmt.Errorf("case %d missing id", i)
		}
		if c.ExpectedVerdict == "" {
			return Fixture{}, fmt.Errorf("case %s missing expected_verdict", c.ID)
		}
	}
	return f, nil
}

// #endregion load

// #region config

// EvaluatorConfig materializes the fixture's overrides over the defaults.
func (f Fixture) EvaluatorConfig() evaluate.Config {
	config := evaluate.DefaultConfig()
	o := f.Config
	if o == nil {
		return config
	}
	if o.MinLength != nil {
		config.Screen.MinLength = *o.MinLength
		config.Scan.MinLength = *o.MinLength
	}
	if o.WeakCutoff != nil {
		config.Score.WeakCutoff = *o.WeakCutoff
	}
	if o.StrongCutoff != nil {
		config.Score.StrongCutoff = *o.StrongCutoff
	}
	if len(o.ExtraDenylist) > 0 {
		config.Screen.Denylist = append(config.Screen.Denylist, o.ExtraDenylist...)
	}
	if o.DenySubstrings != nil {
		config.Screen.DenySubstrings = *o.DenySubstrings
	}
	return config
}

// #endregion config
