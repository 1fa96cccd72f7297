package storage

import (
	"path/filepath"
	"testing"
)

func TestHighScoresSeedOnFirstOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.csv")

	table, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}

	top := table.Top()
	if len(top) != TableSize {
		t.Fatalf("Seeded table has %d entries, want %d", len(top), TableSize)
	}

	if top[0].Score != 50000 {
		t.Errorf("Top seed score = %d, want 50000", top[0].Score)
	}
	if top[0].Name != "Freddy" || top[0].Level != 5 {
		t.Errorf("Top seed = %s level %d, want Freddy level 5", top[0].Name, top[0].Level)
	}

	if top[9].Score != 5000 {
		t.Errorf("Bottom seed score = %d, want 5000", top[9].Score)
	}
	if top[9].Name != "BBB" || top[9].Level != 1 {
		t.Errorf("Bottom seed = %s level %d, want BBB level 1", top[9].Name, top[9].Level)
	}

	// Scores descend in 5000-point steps
	for i := 1; i < len(top); i++ {
		if top[i-1].Score-top[i].Score != 5000 {
			t.Errorf("Gap between rank %d and %d = %d, want 5000",
				i, i+1, top[i-1].Score-top[i].Score)
		}
	}
}

func TestHighScoresQualifies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.csv")

	table, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}

	// Seeded table bottoms out at 5000
	cases := []struct {
		score int
		want  bool
	}{
		{0, false},
		{-100, false},
		{4999, false},
		{5000, false}, // Ties do not displace
		{5001, true},
		{999999, true},
	}
	for _, c := range cases {
		if got := table.Qualifies(c.score); got != c.want {
			t.Errorf("Qualifies(%d) = %v, want %v", c.score, got, c.want)
		}
	}
}

func TestHighScoresAddReRanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.csv")

	table, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}

	if err := table.Add("ACE", 12, 60000); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	top := table.Top()
	if top[0].Name != "ACE" || top[0].Score != 60000 {
		t.Errorf("New top = %s/%d, want ACE/60000", top[0].Name, top[0].Score)
	}
	if len(top) != TableSize {
		t.Errorf("Table grew to %d entries, want %d", len(top), TableSize)
	}

	// The previous 10th place (5000) falls off the ranked table
	if top[TableSize-1].Score != 10000 {
		t.Errorf("New bottom score = %d, want 10000", top[TableSize-1].Score)
	}
}

func TestHighScoresPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscores.csv")

	table, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("OpenHighScores() failed: %v", err)
	}
	if err := table.Add("ZOE", 3, 17500); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	reopened, err := OpenHighScores(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}

	found := false
	for _, e := range reopened.Top() {
		if e.Name == "ZOE" && e.Score == 17500 && e.Level == 3 {
			found = true
		}
	}
	if !found {
		t.Error("Added entry not present after reopen")
	}

	// No double seeding on reopen
	if len(reopened.Top()) != TableSize {
		t.Errorf("Reopened table has %d entries, want %d", len(reopened.Top()), TableSize)
	}
}
