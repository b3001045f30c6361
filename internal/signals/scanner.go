package signals

import (
	"math"
	"unicode"
)

// #region scanner

// Scanner computes the signal tuple over a password string. Pure: the only
// inputs are the password and the immutable configuration tables.
type Scanner struct {
	config     ScanConfig
	confusable map[rune]int // rune -> confusable group index
}

// NewScanner creates a Scanner and precomputes the confusable lookup.
func NewScanner(config ScanConfig) *Scanner {
	confusable := make(map[rune]int)
	for i, group := range config.ConfusableGroups {
		for _, r := range group {
			confusable[r] = i
		}
	}
	return &Scanner{config: config, confusable: confusable}
}

// #endregion scanner

// #region scan

// Scan computes all signals for the given password.
func (s *Scanner) Scan(password string) Signals {
	runes := []rune(password)
	return Signals{
		ClassDiversity:    classDiversity(runes),
		ConfusableDensity: s.confusableDensity(runes),
		RepeatRunPenalty:  s.repeatRunPenalty(runes),
		EntropyEstimate:   entropyEstimate(runes),
		LengthBonus:       s.lengthBonus(runes),
		UniqueRatio:       uniqueRatio(runes),
		InnerMix:          innerMix(runes),
		Wordish:           wordish(runes),
		YearSuffix:        yearSuffix(runes),
	}
}

// #endregion scan

// #region class-diversity

// classDiversity counts distinct character classes among lowercase,
// uppercase, digit, symbol. Whitespace counts as no class.
func classDiversity(runes []rune) int {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsSpace(r):
			hasSymbol = true
		}
	}
	count := 0
	for _, has := range []bool{hasLower, hasUpper, hasDigit, hasSymbol} {
		if has {
			count++
		}
	}
	return count
}

// #endregion class-diversity

// #region confusable

// confusableDensity is the fraction of characters in any lookalike group.
func (s *Scanner) confusableDensity(runes []rune) float64 {
	if len(runes) == 0 {
		return 0
	}
	hits := 0
	for _, r := range runes {
		if _, ok := s.confusable[r]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(runes))
}

// #endregion confusable

// #region repeat-runs

// repeatRunPenalty measures the fraction of the password consumed by runs
// of length >= RunLength of one repeated character or an alternating
// two-character cycle. Covered positions are marked once, so an identical
// run inside a longer stretch is not double-counted.
func (s *Scanner) repeatRunPenalty(runes []rune) float64 {
	n := len(runes)
	if n == 0 || s.config.RunLength <= 0 {
		return 0
	}
	covered := make([]bool, n)

	// Identical runs.
	for i := 0; i < n; {
		j := i + 1
		for j < n && runes[j] == runes[i] {
			j++
		}
		if j-i >= s.config.RunLength {
			markRange(covered, i, j)
		}
		i = j
	}

	// Alternating two-character cycles ("ababab").
	for i := 0; i+1 < n; {
		if runes[i] == runes[i+1] {
			i++
			continue
		}
		j := i + 2
		for j < n && runes[j] == runes[j-2] && runes[j] != runes[j-1] {
			j++
		}
		if j-i >= s.config.RunLength {
			markRange(covered, i, j)
		}
		if j-1 > i {
			i = j - 1
		} else {
			i++
		}
	}

	hits := 0
	for _, c := range covered {
		if c {
			hits++
		}
	}
	return float64(hits) / float64(n)
}

func markRange(covered []bool, from, to int) {
	for i := from; i < to; i++ {
		covered[i] = true
	}
}

// #endregion repeat-runs

// #region entropy

// entropyEstimate computes Shannon entropy in bits per character over the
// empirical character distribution, normalized by log2 of the distinct
// count so short and long passwords compare on the same [0, 1] scale.
func entropyEstimate(runes []rune) float64 {
	if len(runes) == 0 {
		return 0
	}
	freq := make(map[rune]int, len(runes))
	for _, r := range runes {
		freq[r]++
	}
	if len(freq) <= 1 {
		return 0
	}
	total := float64(len(runes))
	var bits float64
	for _, c := range freq {
		p := float64(c) / total
		bits -= p * math.Log2(p)
	}
	return bits / math.Log2(float64(len(freq)))
}

// #endregion entropy

// #region length-bonus

// lengthBonus is min(length-MinLength, cap)/cap, one point per character
// beyond the minimum up to the cap.
func (s *Scanner) lengthBonus(runes []rune) float64 {
	if s.config.LengthBonusCap <= 0 {
		return 0
	}
	extra := len(runes) - s.config.MinLength
	if extra <= 0 {
		return 0
	}
	if extra > s.config.LengthBonusCap {
		extra = s.config.LengthBonusCap
	}
	return float64(extra) / float64(s.config.LengthBonusCap)
}

// #endregion length-bonus

// #region unique-ratio

func uniqueRatio(runes []rune) float64 {
	if len(runes) == 0 {
		return 0
	}
	distinct := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		distinct[r] = struct{}{}
	}
	return float64(len(distinct)) / float64(len(runes))
}

// #endregion unique-ratio

// #region inner-mix

// innerMix reports a digit or symbol strictly between letters, e.g. the
// "0" in "Tr0ub" but not the "123" in "password123".
func innerMix(runes []rune) bool {
	for i := 1; i+1 < len(runes); i++ {
		if !unicode.IsLetter(runes[i-1]) || !unicode.IsLetter(runes[i+1]) {
			continue
		}
		r := runes[i]
		if unicode.IsDigit(r) || (!unicode.IsLetter(r) && !unicode.IsSpace(r)) {
			return true
		}
	}
	return false
}

// #endregion inner-mix

// #region wordish

// separators delimit word-like chunks within a password.
const separators = " \t-_.@#$%!:+*"

// wordish reports whether the password contains a pronounceable segment
// (>= 4 letters with vowels, consonants, and a consonant-vowel-consonant
// triple) or a CamelCase hump.
func wordish(runes []rune) bool {
	start := 0
	for i := 0; i <= len(runes); i++ {
		if i < len(runes) && !isSeparator(runes[i]) {
			continue
		}
		if wordSegment(runes[start:i]) {
			return true
		}
		start = i + 1
	}
	return camelHump(runes)
}

func isSeparator(r rune) bool {
	for _, sep := range separators {
		if r == sep {
			return true
		}
	}
	return false
}

func wordSegment(seg []rune) bool {
	letters := make([]rune, 0, len(seg))
	for _, r := range seg {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) < 4 {
		return false
	}
	var hasVowel, hasConsonant bool
	for _, r := range letters {
		if isVowel(r) {
			hasVowel = true
		} else {
			hasConsonant = true
		}
	}
	if !hasVowel || !hasConsonant {
		return false
	}
	for i := 0; i+2 < len(letters); i++ {
		if !isVowel(letters[i]) && isVowel(letters[i+1]) && !isVowel(letters[i+2]) {
			return true
		}
	}
	return false
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// camelHump detects an Upper-lower...-Upper transition ("NovaTrail").
func camelHump(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		if !unicode.IsUpper(runes[i]) || !unicode.IsLower(runes[i+1]) {
			continue
		}
		j := i + 2
		for j < len(runes) && unicode.IsLower(runes[j]) {
			j++
		}
		if j < len(runes) && unicode.IsUpper(runes[j]) {
			return true
		}
	}
	return false
}

// #endregion wordish

// #region year-suffix

// yearSuffix reports a trailing 19xx or 20xx (through 2039) year.
func yearSuffix(runes []rune) bool {
	n := len(runes)
	if n < 4 {
		return false
	}
	tail := runes[n-4:]
	for _, r := range tail {
		if r < '0' || r > '9' {
			return false
		}
	}
	year := 0
	for _, r := range tail {
		year = year*10 + int(r-'0')
	}
	return (year >= 1900 && year <= 1999) || (year >= 2000 && year <= 2039)
}

// #endregion year-suffix
