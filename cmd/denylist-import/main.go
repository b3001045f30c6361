package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rmwaite/passgate/internal/denystore"
)

// #region main

func main() {
	_ = godotenv.Load()

	dbPath := flag.String("db", envOr("PASSGATE_DB", ""), "path to denylist SQLite db")
	filePath := flag.String("file", "", "text file with one denylist entry per line")
	source := flag.String("source", "import", "provenance label stored with each entry")
	flag.Parse()

	if *dbPath == "" || *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: denylist-import --db passgate.db --file entries.txt [--source label]")
		os.Exit(2)
	}

	if err := run(*dbPath, *filePath, *source); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run holds the db flow so the store's deferred Close fires on every
// error path.
func run(dbPath, filePath, source string) error {
	entries, err := readEntries(filePath)
	if err != nil {
		return err
	}

	store, err := denystore.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	added, err := store.AddBatch(entries, source)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	total, err := store.Count()
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	fmt.Printf("imported %d new entries (%d read, %d total in db)\n", added, len(entries), total)
	return nil
}

// #endregion main

// #region helpers

func readEntries(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		entries = append(entries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return entries, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
