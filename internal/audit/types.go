package audit

import "time"

// #region entry

// Entry is one evaluation decision row. The candidate password itself is
// never stored; only its length is kept for triage.
type Entry struct {
	ID             string    `json:"id"`
	Verdict        string    `json:"verdict"`
	Reason         string    `json:"reason,omitempty"`       // empty unless rejected
	Score          *float64  `json:"score,omitempty"`        // nil when rejected
	SignalsJSON    string    `json:"signals_json,omitempty"` // marshalled signal tuple, empty when rejected
	PasswordLength int       `json:"password_length"`
	CreatedAt      time.Time `json:"created_at"`
}

// #endregion entry
