package passgate

import (
	"sync"
	"testing"
)

func TestEvaluateDefaults(t *testing.T) {
	cases := []struct {
		pwd     string
		verdict Verdict
		reason  Reason
	}{
		{"password123", VerdictRejected, ReasonDenylisted},
		{"aaaaaaaa", VerdictRejected, ReasonAllIdenticalChars},
		{"ab3", VerdictRejected, ReasonTooShort},
		{"O0O0O0O0", VerdictWeak, ""},
	}
	for _, tc := range cases {
		r := Evaluate(tc.pwd)
		if r.Verdict != tc.verdict {
			t.Fatalf("%q: expected %s, got %s", tc.pwd, tc.verdict, r.Verdict)
		}
		if r.Reason != tc.reason {
			t.Fatalf("%q: expected reason %q, got %q", tc.pwd, tc.reason, r.Reason)
		}
	}
}

func TestEvaluateScoreRange(t *testing.T) {
	r := Evaluate("Tr0ub4dor&3xyz")

	if r.Verdict != VerdictAcceptable && r.Verdict != VerdictStrong {
		t.Fatalf("expected acceptable or strong, got %s", r.Verdict)
	}
	if r.Score == nil || *r.Score < 0 || *r.Score > 100 {
		t.Fatalf("score out of range: %v", r.Score)
	}
}

func TestCustomConfig(t *testing.T) {
	config := DefaultConfig()
	config.Screen.MinLength = 12
	config.Scan.MinLength = 12
	e := New(config)

	r := e.Evaluate("Okta9#zip")

	if r.Reason != ReasonTooShort {
		t.Fatalf("expected too_short under raised minimum, got %s", r.Verdict)
	}
}

func TestConcurrentEvaluation(t *testing.T) {
	// One evaluator shared across goroutines; no coordination needed.
	e := New(DefaultConfig())
	const workers = 16

	var wg sync.WaitGroup
	results := make([]Result, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Evaluate("NovaTrail_19$elm")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i].Verdict != results[0].Verdict || *results[i].Score != *results[0].Score {
			t.Fatalf("diverging results under concurrency: %+v vs %+v", results[i], results[0])
		}
	}
}
