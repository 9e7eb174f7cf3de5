package persistence

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/arcanum/internal/wisdom"
)

// Chronicle is the SQLite record of everything the tower has ever
// learned: an append-only logbook of truths and one row per completed
// run. It sits beside the JSON save; chronicle failures are logged by
// callers and never fatal.
type Chronicle struct {
	conn *sqlx.DB

	// RunID identifies the current run in the logbook. A new id is cut
	// on every transcendence.
	RunID string
}

// OpenChronicle opens or creates the chronicle database at path.
func OpenChronicle(path string) (*Chronicle, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open chronicle: %w", err)
	}

	c := &Chronicle{conn: conn, RunID: uuid.NewString()}
	if err := c.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate chronicle: %w", err)
	}

	return c, nil
}

// Close closes the database connection.
func (c *Chronicle) Close() error {
	return c.conn.Close()
}

func (c *Chronicle) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS logbook (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		sim_time REAL NOT NULL,
		catalog_index INTEGER NOT NULL,
		text TEXT NOT NULL,
		recorded_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		ended_at INTEGER NOT NULL,
		insight_earned INTEGER NOT NULL,
		truths INTEGER NOT NULL,
		duration_secs REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_logbook_run ON logbook(run_id);
	`
	_, err := c.conn.Exec(schema)
	return err
}

// AppendTruths writes a batch of truths to the logbook.
func (c *Chronicle) AppendTruths(simTime float64, truths []wisdom.Truth) error {
	if len(truths) == 0 {
		return nil
	}

	tx, err := c.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, t := range truths {
		_, err := tx.Exec(
			`INSERT INTO logbook (run_id, sim_time, catalog_index, text, recorded_at)
			 VALUES (?, ?, ?, ?, ?)`,
			c.RunID, simTime, t.Index, t.Text, now,
		)
		if err != nil {
			return fmt.Errorf("insert truth: %w", err)
		}
	}

	return tx.Commit()
}

// CloseRun records a finished run and cuts a fresh run id for the next
// one. Returns the new id.
func (c *Chronicle) CloseRun(insightEarned uint32, truths uint32, durationSecs float64) (string, error) {
	_, err := c.conn.Exec(
		`INSERT INTO runs (run_id, ended_at, insight_earned, truths, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		c.RunID, time.Now().Unix(), insightEarned, truths, durationSecs,
	)
	if err != nil {
		return c.RunID, fmt.Errorf("insert run: %w", err)
	}
	c.RunID = uuid.NewString()
	return c.RunID, nil
}

// LogEntry is one logbook row.
type LogEntry struct {
	RunID        string  `db:"run_id"`
	SimTime      float64 `db:"sim_time"`
	CatalogIndex int     `db:"catalog_index"`
	Text         string  `db:"text"`
	RecordedAt   int64   `db:"recorded_at"`
}

// RecentTruths reads the newest logbook entries, newest first.
func (c *Chronicle) RecentTruths(limit int) ([]LogEntry, error) {
	var entries []LogEntry
	err := c.conn.Select(&entries,
		`SELECT run_id, sim_time, catalog_index, text, recorded_at
		 FROM logbook ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query logbook: %w", err)
	}
	return entries, nil
}

// RunRecord is one completed run.
type RunRecord struct {
	RunID         string  `db:"run_id"`
	EndedAt       int64   `db:"ended_at"`
	InsightEarned uint32  `db:"insight_earned"`
	Truths        uint32  `db:"truths"`
	DurationSecs  float64 `db:"duration_secs"`
}

// Runs reads all completed runs, newest first.
func (c *Chronicle) Runs() ([]RunRecord, error) {
	var runs []RunRecord
	err := c.conn.Select(&runs,
		`SELECT run_id, ended_at, insight_earned, truths, duration_secs
		 FROM runs ORDER BY ended_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	return runs, nil
}
