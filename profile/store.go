// Package profile persists level results and per-level best progress in
// SQLite, using the pure-Go modernc.org/sqlite driver.
package profile

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/milk9111/puzzlepath/system"
)

const timeLayout = "2006-01-02 15:04:05"

// DefaultPath is where the game keeps its profile unless told otherwise.
const DefaultPath = "~/.puzzlepath/profile.db"

type Store struct {
	db *sql.DB
}

// Run is one stored level attempt.
type Run struct {
	ID           string
	Level        string
	Score        int
	TimeSpent    float64
	Completed    bool
	ParMet       bool
	Treasures    int
	AttemptsLeft int
	CreatedAt    time.Time
}

// Progress is the best completed result for a level.
type Progress struct {
	Level     string
	BestScore int
	// BestTime is the time of the run that set BestScore, in seconds.
	BestTime  float64
	Runs      int
	UpdatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories
// and running migrations. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("profile: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profile: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("profile: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			level TEXT NOT NULL,
			score INTEGER NOT NULL,
			time_spent REAL NOT NULL,
			completed INTEGER NOT NULL,
			par_met INTEGER NOT NULL,
			treasures INTEGER NOT NULL,
			attempts_left INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(level, score DESC);

		CREATE TABLE IF NOT EXISTS progress (
			level TEXT PRIMARY KEY,
			best_score INTEGER NOT NULL,
			best_time REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a run under a fresh ID. A completed run replaces the
// level's progress only when it beats the stored best score. newBest reports
// whether it did.
func (s *Store) SaveResult(res system.Result) (id string, newBest bool, err error) {
	id = uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", false, fmt.Errorf("profile: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		`INSERT INTO runs (id, level, score, time_spent, completed, par_met, treasures, attempts_left)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.LevelName, res.Score, res.TimeSpent, res.Completed, res.ParMet,
		res.TreasuresCollected, res.AttemptsLeft,
	)
	if err != nil {
		return "", false, fmt.Errorf("profile: cannot save run: %w", err)
	}

	if res.Completed {
		var best sql.NullInt64
		err = tx.QueryRow("SELECT best_score FROM progress WHERE level = ?", res.LevelName).Scan(&best)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return "", false, fmt.Errorf("profile: cannot query progress: %w", err)
		}
		err = nil
		if !best.Valid || int64(res.Score) > best.Int64 {
			_, err = tx.Exec(
				`INSERT INTO progress (level, best_score, best_time, updated_at)
				 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
				 ON CONFLICT(level) DO UPDATE SET
				   best_score = excluded.best_score,
				   best_time = excluded.best_time,
				   updated_at = excluded.updated_at`,
				res.LevelName, res.Score, res.TimeSpent,
			)
			if err != nil {
				return "", false, fmt.Errorf("profile: cannot update progress: %w", err)
			}
			newBest = true
		}
	}

	if err = tx.Commit(); err != nil {
		return "", false, fmt.Errorf("profile: commit: %w", err)
	}
	return id, newBest, nil
}

// Progress returns the best completed result for level, or nil if the level
// has never been completed.
func (s *Store) Progress(level string) (*Progress, error) {
	p := Progress{Level: level}
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT p.best_score, p.best_time, p.updated_at,
		        (SELECT COUNT(*) FROM runs r WHERE r.level = p.level)
		 FROM progress p WHERE p.level = ?`,
		level,
	).Scan(&p.BestScore, &p.BestTime, &updatedAt, &p.Runs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile: cannot query progress: %w", err)
	}
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// TopRuns returns the best runs for level, highest score first.
func (s *Store) TopRuns(level string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level, score, time_spent, completed, par_met, treasures, attempts_left, created_at
		 FROM runs
		 WHERE level = ?
		 ORDER BY score DESC, time_spent ASC
		 LIMIT ?`,
		level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("profile: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Level, &r.Score, &r.TimeSpent, &r.Completed, &r.ParMet,
			&r.Treasures, &r.AttemptsLeft, &createdAt); err != nil {
			return nil, fmt.Errorf("profile: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("profile: row iteration error: %w", err)
	}
	return runs, nil
}

// ClearLevel deletes every run and the progress for level.
func (s *Store) ClearLevel(level string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE level = ?", level); err != nil {
		return fmt.Errorf("profile: cannot clear runs: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM progress WHERE level = ?", level); err != nil {
		return fmt.Errorf("profile: cannot clear progress: %w", err)
	}
	return nil
}

// SQLite hands DATETIME columns back as time.Time or text depending on how
// they were written.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
