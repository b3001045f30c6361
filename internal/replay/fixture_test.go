package replay

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadFixture(t *testing.T) {
	path := writeFixture(t, `{
		"description": "smoke",
		"config": {"weak_cutoff": 35},
		"cases": [
			{"id": "a", "password": "password123", "expected_verdict": "rejected", "expected_reason": "denylisted"},
			{"id": "b", "password": "Granite*fox4River", "expected_verdict": "strong"}
		]
	}`)

	f, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}
	if f.Description != "smoke" {
		t.Fatalf("unexpected description %q", f.Description)
	}
	if len(f.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(f.Cases))
	}
	if f.Config == nil || f.Config.WeakCutoff == nil || *f.Config.WeakCutoff != 35 {
		t.Fatalf("expected weak cutoff override, got %+v", f.Config)
	}

	config := f.EvaluatorConfig()
	if config.Score.WeakCutoff != 35 {
		t.Fatalf("override not applied: %v", config.Score.WeakCutoff)
	}
	if config.Score.StrongCutoff != 70 {
		t.Fatalf("untouched field changed: %v", config.Score.StrongCutoff)
	}
}

func TestLoadFixtureRejectsEmptyCases(t *testing.T) {
	path := writeFixture(t, `{"description": "empty", "cases": []}`)

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for empty cases")
	}
}

func TestLoadFixtureRejectsMissingID(t *testing.T) {
	path := writeFixture(t, `{"cases": [{"password": "x", "expected_verdict": "weak"}]}`)

	if _, err := LoadFixture(path); err == nil {
		t.Fatal("expected error for missing id")
	}
}

func TestLegacyCasesFixture(t *testing.T) {
	f, err := LoadFixture(filepath.Join("testdata", "legacy_cases.json"))
	if err != nil {
		t.Fatalf("LoadFixture: %v", err)
	}

	results, summary := Replay(f)

	if summary.Failed != 0 {
		for _, r := range results {
			if !r.Pass {
				t.Errorf("case %s: expected %s, got %s (%s)", r.ID, r.Expected, r.Actual, r.Reason)
			}
		}
		t.Fatalf("%d/%d legacy cases failed", summary.Failed, summary.Total)
	}
}

func TestLoadFixtureMissingFile(t *testing.T) {
	if _, err := LoadFixture(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
