package screen

import "testing"

func TestScreenPassesStructuredPassword(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	m := s.Screen("Tr0ub4dor&3xyz")

	if m.Matched {
		t.Fatalf("expected no match, got %s (%s)", m.Reason, m.Detail)
	}
}

func TestScreenTooShort(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	for _, pwd := range []string{"", "ab3", "Short1!"} {
		m := s.Screen(pwd)
		if !m.Matched {
			t.Fatalf("%q: expected match", pwd)
		}
		if m.Reason != ReasonTooShort {
			t.Fatalf("%q: expected too_short, got %s", pwd, m.Reason)
		}
	}
}

func TestScreenTooLong(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	long := make([]byte, 129)
	for i := range long {
		// vary characters so no other check fires first
		long[i] = byte('a' + (i*7)%26)
	}
	m := s.Screen(string(long))

	if m.Reason != ReasonTooLong {
		t.Fatalf("expected too_long, got %s (%s)", m.Reason, m.Detail)
	}
}

func TestScreenDenylisted(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	for _, pwd := range []string{"password123", "PASSWORD123", "Qwerty2024"} {
		m := s.Screen(pwd)
		if m.Reason != ReasonDenylisted {
			t.Fatalf("%q: expected denylisted, got %s", pwd, m.Reason)
		}
	}
}

func TestScreenDenylistBeatsLength(t *testing.T) {
	// "letmein" is 7 chars but sits on the denylist; the denylist check
	// runs first so the reason names the real problem.
	s := NewScreener(DefaultScreenConfig())

	m := s.Screen("letmein")

	if m.Reason != ReasonDenylisted {
		t.Fatalf("expected denylisted, got %s", m.Reason)
	}
}

func TestScreenCustomDenylistEntry(t *testing.T) {
	config := DefaultScreenConfig()
	config.Denylist = []string{"CorrectHorse"}
	s := NewScreener(config)

	m := s.Screen("correcthorse")

	if m.Reason != ReasonDenylisted {
		t.Fatalf("expected denylisted, got %s", m.Reason)
	}
}

func TestScreenDenySubstrings(t *testing.T) {
	config := DefaultScreenConfig()
	config.DenySubstrings = true
	s := NewScreener(config)

	m := s.Screen("mypassword99!")

	if m.Reason != ReasonDenylisted {
		t.Fatalf("expected denylisted, got %s", m.Reason)
	}

	// Off by default: containment alone does not reject.
	exact := NewScreener(DefaultScreenConfig())
	if got := exact.Screen("mypassword99!"); got.Matched {
		t.Fatalf("expected pass without substring mode, got %s", got.Reason)
	}
}

func TestScreenAllIdentical(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	m := s.Screen("aaaaaaaa")

	if m.Reason != ReasonAllIdenticalChars {
		t.Fatalf("expected all_identical_chars, got %s", m.Reason)
	}
}

func TestScreenShortIdenticalReportsTooShort(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	m := s.Screen("aaaa")

	if m.Reason != ReasonTooShort {
		t.Fatalf("expected too_short for sub-minimum input, got %s", m.Reason)
	}
}

func TestScreenRepeatingUnitDisabledByDefault(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	// Alternating confusables pass the screener and get scored down instead.
	if m := s.Screen("O0O0O0O0"); m.Matched {
		t.Fatalf("expected pass, got %s", m.Reason)
	}
}

func TestScreenRepeatingUnitEnabled(t *testing.T) {
	config := DefaultScreenConfig()
	config.MaxRepeatUnit = 3
	s := NewScreener(config)

	m := s.Screen("xyzxyzxyz")

	if m.Reason != ReasonRepeatingUnit {
		t.Fatalf("expected repeating_unit, got %s", m.Reason)
	}
	if m.Detail != "xyz" {
		t.Fatalf("expected unit xyz, got %q", m.Detail)
	}
}

func TestScreenSequentialRun(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	for _, pwd := range []string{"zk1234zk", "wxabcdwx", "plonKJIHplon"} {
		m := s.Screen(pwd)
		if m.Reason != ReasonSequentialRun {
			t.Fatalf("%q: expected sequential_run, got %s", pwd, m.Reason)
		}
	}
}

func TestScreenKeyboardRun(t *testing.T) {
	s := NewScreener(DefaultScreenConfig())

	m := s.Screen("xoQWERxo19")

	if m.Reason != ReasonKeyboardRun {
		t.Fatalf("expected keyboard_run, got %s (%s)", m.Reason, m.Detail)
	}
}

func TestScreenKeyboardRunDisabledByEmptyTable(t *testing.T) {
	config := DefaultScreenConfig()
	config.KeyboardRows = nil
	s := NewScreener(config)

	if m := s.Screen("xoQWERxo19"); m.Matched {
		t.Fatalf("expected pass with keyboard table emptied, got %s", m.Reason)
	}
}

func TestScreenRunLengthThreshold(t *testing.T) {
	// A 3-char fragment of a sequence is under the default threshold of 4.
	s := NewScreener(DefaultScreenConfig())

	if m := s.Screen("Mint123#Elm"); m.Matched {
		t.Fatalf("expected pass for 3-char run, got %s (%s)", m.Reason, m.Detail)
	}
}
