package screen

import (
	"fmt"
	"strings"
)

// #region screener

// Screener rejects passwords that match a fatal pattern. Checks run in a
// fixed order and the first match wins; order only affects which reason is
// reported, since any match rejects.
type Screener struct {
	config     ScreenConfig
	deny       map[string]struct{}
	denyTokens []string
}

// NewScreener builds a screener from the given configuration. The effective
// denylist is the embedded default list plus config.Denylist, lowercased.
func NewScreener(config ScreenConfig) *Screener {
	entries := append(DefaultDenylist(), config.Denylist...)
	deny := make(map[string]struct{}, len(entries))
	tokens := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, dup := deny[e]; dup {
			continue
		}
		deny[e] = struct{}{}
		tokens = append(tokens, e)
	}
	return &Screener{config: config, deny: deny, denyTokens: tokens}
}

// #endregion screener

// #region screen

// check is one fatal-pattern predicate. A nil return means no match.
type check func(runes []rune, lower string) *Match

// Screen runs all fatal-pattern checks against the password.
// Denylist membership is checked before length so that short denylist
// entries report denylisted rather than too_short; everything else that is
// under the minimum length reports too_short.
func (s *Screener) Screen(password string) Match {
	runes := []rune(password)
	lower := strings.ToLower(password)

	checks := []check{
		s.checkDenylist,
		s.checkLength,
		s.checkAllIdentical,
		s.checkRepeatingUnit,
		s.checkSequentialRun,
		s.checkKeyboardRun,
	}
	for _, c := range checks {
		if m := c(runes, lower); m != nil {
			return *m
		}
	}
	return Match{}
}

// #endregion screen

// #region checks

func (s *Screener) checkDenylist(runes []rune, lower string) *Match {
	if _, ok := s.deny[lower]; ok {
		return &Match{Matched: true, Reason: ReasonDenylisted, Detail: lower}
	}
	if s.config.DenySubstrings {
		for _, token := range s.denyTokens {
			if strings.Contains(lower, token) {
				return &Match{Matched: true, Reason: ReasonDenylisted, Detail: token}
			}
		}
	}
	return nil
}

func (s *Screener) checkLength(runes []rune, lower string) *Match {
	if len(runes) < s.config.MinLength {
		return &Match{
			Matched: true,
			Reason:  ReasonTooShort,
			Detail:  fmt.Sprintf("%d chars, minimum %d", len(runes), s.config.MinLength),
		}
	}
	if s.config.MaxLength > 0 && len(runes) > s.config.MaxLength {
		return &Match{
			Matched: true,
			Reason:  ReasonTooLong,
			Detail:  fmt.Sprintf("%d chars, maximum %d", len(runes), s.config.MaxLength),
		}
	}
	return nil
}

func (s *Screener) checkAllIdentical(runes []rune, lower string) *Match {
	if len(runes) == 0 {
		return nil
	}
	first := runes[0]
	for _, r := range runes[1:] {
		if r != first {
			return nil
		}
	}
	return &Match{Matched: true, Reason: ReasonAllIdenticalChars, Detail: string(first)}
}

// checkRepeatingUnit detects whole-string repetitions of a short unit,
// like "abababab" (unit "ab"). Unit length 1 is left to checkAllIdentical.
func (s *Screener) checkRepeatingUnit(runes []rune, lower string) *Match {
	n := len(runes)
	for m := 2; m <= s.config.MaxRepeatUnit && m*2 <= n; m++ {
		if n%m != 0 {
			continue
		}
		periodic := true
		for i := m; i < n; i++ {
			if runes[i] != runes[i-m] {
				periodic = false
				break
			}
		}
		if periodic {
			return &Match{Matched: true, Reason: ReasonRepeatingUnit, Detail: string(runes[:m])}
		}
	}
	return nil
}

func (s *Screener) checkSequentialRun(runes []rune, lower string) *Match {
	if run := findRun(string(runes), s.config.Sequences, s.config.SequentialRunLength, false); run != "" {
		return &Match{Matched: true, Reason: ReasonSequentialRun, Detail: run}
	}
	return nil
}

func (s *Screener) checkKeyboardRun(runes []rune, lower string) *Match {
	if run := findRun(lower, s.config.KeyboardRows, s.config.SequentialRunLength, true); run != "" {
		return &Match{Matched: true, Reason: ReasonKeyboardRun, Detail: run}
	}
	return nil
}

// #endregion checks

// #region helpers

// findRun reports the first window of length runLen from any table entry
// (or its reverse) that occurs in the password. Tables are lowercased when
// caseFold is set so lookups against a lowercased password line up.
func findRun(password string, table []string, runLen int, caseFold bool) string {
	if runLen <= 0 {
		return ""
	}
	for _, seq := range table {
		if caseFold {
			seq = strings.ToLower(seq)
		}
		for _, candidate := range []string{seq, reverse(seq)} {
			for i := 0; i+runLen <= len(candidate); i++ {
				window := candidate[i : i+runLen]
				if strings.Contains(password, window) {
					return window
				}
			}
		}
	}
	return ""
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// #endregion helpers
