package main

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rmwaite/passgate"
	"github.com/rmwaite/passgate/internal/audit"
	"github.com/rmwaite/passgate/internal/denystore"
)

// #region main

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", envOr("PASSGATE_DB", ""), "optional SQLite db with extra denylist entries")
	auditLog := flag.Bool("audit", false, "record decisions in the audit log (requires --db)")
	auditList := flag.Int("audit-list", 0, "show N most recent audit entries and exit (requires --db)")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	minLength := flag.Int("min", 0, "override minimum length (0 = default)")
	flag.Parse()

	if (*auditLog || *auditList > 0) && *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: passgate [--db path] [--audit] [--audit-list N] [--json] [--min N] [password ...]")
		os.Exit(2)
	}

	if err := run(*dbPath, *auditLog, *auditList, *jsonOut, *minLength, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run holds the long flow so the store's deferred Close fires on every
// error path.
func run(dbPath string, auditLog bool, auditList int, jsonOut bool, minLength int, args []string) error {
	config := passgate.DefaultConfig()
	if minLength > 0 {
		config.Screen.MinLength = minLength
		config.Scan.MinLength = minLength
	}

	var store *denystore.Store
	if dbPath != "" {
		var err error
		store, err = denystore.NewStore(dbPath)
		if err != nil {
			return fmt.Errorf("open db: %w", err)
		}
		defer store.Close()

		if auditLog || auditList > 0 {
			if err := audit.EnsureSchema(store.DB()); err != nil {
				return err
			}
		}
		if auditList > 0 {
			return runAuditList(store.DB(), auditList, jsonOut)
		}

		entries, err := store.Entries()
		if err != nil {
			return fmt.Errorf("load denylist: %w", err)
		}
		config.Screen.Denylist = append(config.Screen.Denylist, entries...)
	}

	evaluator := passgate.New(config)

	if len(args) > 0 {
		for _, pwd := range args {
			if err := evalOne(evaluator, store, pwd, jsonOut, auditLog); err != nil {
				return err
			}
		}
		return nil
	}

	// No args: read candidates line by line.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		pwd := strings.TrimRight(scanner.Text(), "\r\n")
		if pwd == "" {
			continue
		}
		if err := evalOne(evaluator, store, pwd, jsonOut, auditLog); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}

// #endregion main

// #region eval-one

func evalOne(evaluator *passgate.Evaluator, store *denystore.Store, pwd string, jsonOut, auditLog bool) error {
	result := evaluator.Evaluate(pwd)

	if auditLog && store != nil {
		if err := audit.RecordResult(store.DB(), result, len(pwd)); err != nil {
			fmt.Fprintf(os.Stderr, "audit: %v\n", err)
		}
	}

	if jsonOut {
		out, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	switch {
	case result.Rejected():
		fmt.Printf("%-12s reason=%s\n", result.Verdict, result.Reason)
	default:
		fmt.Printf("%-12s score=%.1f classes=%d entropy=%.2f\n",
			result.Verdict, *result.Score, result.Signals.ClassDiversity, result.Signals.EntropyEstimate)
	}
	return nil
}

// #endregion eval-one

// #region audit-list

func runAuditList(db *sql.DB, n int, jsonOut bool) error {
	entries, err := audit.List(db, n)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no audit entries found")
		return nil
	}

	if jsonOut {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%-8s  %-10s  %-18s  %6s  %3s  %s\n",
		"ID", "Verdict", "Reason", "Score", "Len", "Time")
	for _, e := range entries {
		reason := e.Reason
		if reason == "" {
			reason = "—"
		}
		score := "—"
		if e.Score != nil {
			score = fmt.Sprintf("%.1f", *e.Score)
		}
		fmt.Printf("%-8s  %-10s  %-18s  %6s  %3d  %s\n",
			shortID(e.ID), e.Verdict, reason, score, e.PasswordLength,
			e.CreatedAt.Format("2006-01-02T15:04:05Z"))
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion audit-list

// #region helpers

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
