package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

// HighScoreEntry is one row of the high-score table.
type HighScoreEntry struct {
	Name  string
	Level int
	Score int
	When  time.Time
}

// HighScoreTable is a CSV-backed high-score table. The file keeps every
// entry ever recorded; the table ranks the top ten by score.
type HighScoreTable struct {
	path    string
	entries []HighScoreEntry
}

const highScoreTimeFormat = "2006-01-02 15:04:05"

// TableSize is how many entries the ranked table holds.
const TableSize = 10

// OpenHighScores opens the CSV file at path, creating and seeding it on
// first use so a fresh install already has a table worth beating.
func OpenHighScores(path string) (*HighScoreTable, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory: %w", err)
	}

	t := &HighScoreTable{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := t.seed(); err != nil {
			return nil, err
		}
	}

	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

// seed writes the synthetic starting table: ten entries at 5000-point
// intervals alternating between two names.
func (t *HighScoreTable) seed() error {
	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("storage: cannot create high-score file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"name", "level", "score", "datetime"}); err != nil {
		return fmt.Errorf("storage: cannot write header: %w", err)
	}

	now := time.Now().Format(highScoreTimeFormat)
	for i := 10; i >= 1; i-- {
		name, level := "BBB", (i+1)/2
		if i%2 == 0 {
			name, level = "Freddy", i/2
		}
		rec := []string{name, strconv.Itoa(level), strconv.Itoa(i * 5000), now}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("storage: cannot write seed row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// load reads every entry from the file and ranks them.
func (t *HighScoreTable) load() error {
	f, err := os.Open(t.path)
	if err != nil {
		return fmt.Errorf("storage: cannot open high-score file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("storage: cannot read high-score file: %w", err)
	}

	t.entries = t.entries[:0]
	for i, rec := range records {
		if i == 0 || len(rec) < 4 {
			continue // Header
		}
		level, _ := strconv.Atoi(rec[1])
		score, _ := strconv.Atoi(rec[2])
		when, _ := time.Parse(highScoreTimeFormat, rec[3])
		t.entries = append(t.entries, HighScoreEntry{
			Name:  rec[0],
			Level: level,
			Score: score,
			When:  when,
		})
	}

	sort.SliceStable(t.entries, func(a, b int) bool {
		return t.entries[a].Score > t.entries[b].Score
	})
	return nil
}

// Top returns the ranked table, at most TableSize entries.
func (t *HighScoreTable) Top() []HighScoreEntry {
	if len(t.entries) > TableSize {
		return t.entries[:TableSize]
	}
	return t.entries
}

// Qualifies reports whether a score would enter the ranked table.
func (t *HighScoreTable) Qualifies(score int) bool {
	if score <= 0 {
		return false
	}
	top := t.Top()
	if len(top) < TableSize {
		return true
	}
	return score > top[TableSize-1].Score
}

// Add appends an entry to the file and re-ranks the table.
func (t *HighScoreTable) Add(name string, level, score int) error {
	entry := HighScoreEntry{Name: name, Level: level, Score: score, When: time.Now()}

	f, err := os.OpenFile(t.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open high-score file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rec := []string{
		entry.Name,
		strconv.Itoa(entry.Level),
		strconv.Itoa(entry.Score),
		entry.When.Format(highScoreTimeFormat),
	}
	if err := w.Write(rec); err != nil {
		return fmt.Errorf("storage: cannot append high score: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	t.entries = append(t.entries, entry)
	sort.SliceStable(t.entries, func(a, b int) bool {
		return t.entries[a].Score > t.entries[b].Score
	})
	return nil
}
