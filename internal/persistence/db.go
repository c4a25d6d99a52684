// Package persistence provides the SQLite-based run archive. Each completed
// tournament is stored as one run row plus its death log and narrative
// transcript, keyed by a generated run ID.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/arenasim/internal/sim"
)

// DB wraps a SQLite connection for the run archive.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		max_days INTEGER NOT NULL,
		final_day INTEGER NOT NULL,
		tribute_count INTEGER NOT NULL,
		survivor_count INTEGER NOT NULL,
		events_run INTEGER NOT NULL,
		alliances_json TEXT NOT NULL,
		tributes_json TEXT NOT NULL,
		stats_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS deaths (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		cause TEXT NOT NULL,
		day INTEGER NOT NULL,
		phase TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS log_lines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		line TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_deaths_run ON deaths(run_id);
	CREATE INDEX IF NOT EXISTS idx_log_lines_run ON log_lines(run_id, seq);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveRun archives a completed run document and returns its run ID.
func (db *DB) SaveRun(doc sim.Document) (string, error) {
	runID := uuid.NewString()
	slog.Info("archiving run", "run_id", runID, "seed", doc.Seed, "final_day", doc.FinalDay)

	tx, err := db.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	alliancesJSON, _ := json.Marshal(doc.Alliances)
	tributesJSON, _ := json.Marshal(doc.Tributes)
	statsJSON, _ := json.Marshal(doc.Stats)

	survivors := 0
	for _, t := range doc.Tributes {
		if t.Alive {
			survivors++
		}
	}

	_, err = tx.Exec(`INSERT INTO runs
		(id, created_at, seed, max_days, final_day, tribute_count, survivor_count,
		 events_run, alliances_json, tributes_json, stats_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, doc.Timestamp, doc.Seed, doc.MaxDays, doc.FinalDay,
		len(doc.Tributes), survivors, doc.Stats.EventsRun,
		string(alliancesJSON), string(tributesJSON), string(statsJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Preparex(
		"INSERT INTO deaths (run_id, name, cause, day, phase) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer stmt.Close()
	for _, d := range doc.DeathLog {
		if _, err := stmt.Exec(runID, d.Name, d.Cause, d.Day, d.Phase); err != nil {
			return "", fmt.Errorf("insert death %q: %w", d.Name, err)
		}
	}

	lineStmt, err := tx.Preparex(
		"INSERT INTO log_lines (run_id, seq, line) VALUES (?, ?, ?)")
	if err != nil {
		return "", err
	}
	defer lineStmt.Close()
	for i, line := range doc.Log {
		if _, err := lineStmt.Exec(runID, i, line); err != nil {
			return "", fmt.Errorf("insert log line %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Info("run archived", "run_id", runID, "deaths", len(doc.DeathLog), "lines", len(doc.Log))
	return runID, nil
}

// RunSummary is one row of the archive listing.
type RunSummary struct {
	ID            string `db:"id"`
	CreatedAt     string `db:"created_at"`
	Seed          int64  `db:"seed"`
	FinalDay      int    `db:"final_day"`
	TributeCount  int    `db:"tribute_count"`
	SurvivorCount int    `db:"survivor_count"`
	EventsRun     int    `db:"events_run"`
}

// RecentRuns returns the most recent N archived runs.
func (db *DB) RecentRuns(limit int) ([]RunSummary, error) {
	var runs []RunSummary
	err := db.conn.Select(&runs,
		`SELECT id, created_at, seed, final_day, tribute_count, survivor_count, events_run
		 FROM runs ORDER BY created_at DESC LIMIT ?`,
		limit,
	)
	return runs, err
}

// Deaths returns the death log of one archived run in record order.
func (db *DB) Deaths(runID string) ([]sim.DeathEntry, error) {
	var deaths []sim.DeathEntry
	err := db.conn.Select(&deaths,
		"SELECT name, cause, day, phase FROM deaths WHERE run_id = ? ORDER BY id",
		runID,
	)
	return deaths, err
}

// Transcript returns the full narrative log of one archived run.
func (db *DB) Transcript(runID string) ([]string, error) {
	var lines []string
	err := db.conn.Select(&lines,
		"SELECT line FROM log_lines WHERE run_id = ? ORDER BY seq",
		runID,
	)
	return lines, err
}
