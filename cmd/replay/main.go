package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rmwaite/passgate/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON file")
	jsonOut := flag.Bool("json", false, "output results as JSON")
	flag.Parse()

	if *fixturePath == "" && flag.NArg() > 0 {
		*fixturePath = flag.Arg(0)
	}
	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay [--json] --fixture cases.json")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	results, summary := replay.Replay(fixture)

	if *jsonOut {
		printJSON(fixture, results, summary)
	} else {
		printTable(fixture, results, summary)
	}

	if summary.Failed > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region output

type jsonReport struct {
	Description string              `json:"description,omitempty"`
	Results     []replay.CaseResult `json:"results"`
	Summary     replay.Summary      `json:"summary"`
}

func printJSON(fixture replay.Fixture, results []replay.CaseResult, summary replay.Summary) {
	report := jsonReport{Description: fixture.Description, Results: results, Summary: summary}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func printTable(fixture replay.Fixture, results []replay.CaseResult, summary replay.Summary) {
	if fixture.Description != "" {
		fmt.Printf("fixture: %s\n", fixture.Description)
	}
	for _, r := range results {
		status := "ok"
		if !r.Pass {
			status = "FAIL"
		}
		detail := string(r.Actual)
		if r.Reason != "" {
			detail += "/" + string(r.Reason)
		}
		if r.Score != nil {
			detail += fmt.Sprintf(" score=%.1f", *r.Score)
		}
		fmt.Printf("%-4s %-20s expected=%-11s got=%s\n", status, r.ID, r.Expected, detail)
	}
	fmt.Printf("%d/%d passed, %d failed\n", summary.Passed, summary.Total, summary.Failed)
}

// #endregion output
