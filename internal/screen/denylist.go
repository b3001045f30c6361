package screen

import (
	_ "embed"
	"strings"
)

// #region embedded-denylist

//go:embed denylist.txt
var defaultDenylistRaw string

// DefaultDenylist returns the embedded common-password list, one entry per
// line, lowercased. Callers extend it via ScreenConfig.Denylist rather than
// editing the embedded file.
func DefaultDenylist() []string {
	lines := strings.Split(defaultDenylistRaw, "\n")
	entries := make([]string, 0, len(lines))
	for _, line := range lines {
		entry := strings.TrimSpace(line)
		if entry == "" {
			continue
		}
		entries = append(entries, strings.ToLower(entry))
	}
	return entries
}

// #endregion embedded-denylist
