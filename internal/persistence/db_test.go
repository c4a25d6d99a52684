package persistence

import (
	"path/filepath"
	"testing"

	"github.com/talgya/arenasim/internal/sim"
	"github.com/talgya/arenasim/internal/tribute"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func runDocument(t *testing.T, seed int64) sim.Document {
	t.Helper()
	s, err := sim.New(sim.DefaultConfig(seed), tribute.DefaultRoster()[:8], nil, nil)
	if err != nil {
		t.Fatalf("sim.New: %v", err)
	}
	s.Run()
	return s.Export()
}

func TestSaveRunRoundTrip(t *testing.T) {
	db := openTestDB(t)
	doc := runDocument(t, 42)

	runID, err := db.SaveRun(doc)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if runID == "" {
		t.Fatal("empty run ID")
	}

	runs, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.ID != runID {
		t.Errorf("run ID = %q, want %q", r.ID, runID)
	}
	if r.Seed != 42 {
		t.Errorf("seed = %d, want 42", r.Seed)
	}
	if r.TributeCount != 8 {
		t.Errorf("tribute count = %d, want 8", r.TributeCount)
	}
	if r.EventsRun != doc.Stats.EventsRun {
		t.Errorf("events run = %d, want %d", r.EventsRun, doc.Stats.EventsRun)
	}

	deaths, err := db.Deaths(runID)
	if err != nil {
		t.Fatalf("Deaths: %v", err)
	}
	if len(deaths) != len(doc.DeathLog) {
		t.Fatalf("got %d deaths, want %d", len(deaths), len(doc.DeathLog))
	}
	for i, d := range deaths {
		if d != doc.DeathLog[i] {
			t.Errorf("death %d = %+v, want %+v", i, d, doc.DeathLog[i])
		}
	}

	lines, err := db.Transcript(runID)
	if err != nil {
		t.Fatalf("Transcript: %v", err)
	}
	if len(lines) != len(doc.Log) {
		t.Fatalf("got %d lines, want %d", len(lines), len(doc.Log))
	}
	for i, l := range lines {
		if l != doc.Log[i] {
			t.Errorf("line %d = %q, want %q", i, l, doc.Log[i])
		}
	}
}

func TestMultipleRunsListed(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.SaveRun(runDocument(t, 1)); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if _, err := db.SaveRun(runDocument(t, 2)); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("got %d runs, want 2", len(runs))
	}
}
