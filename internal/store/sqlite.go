package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/progress"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
)

const schema = `
CREATE TABLE IF NOT EXISTS attempts (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    attempt INTEGER NOT NULL,
    mode TEXT NOT NULL,
    score INTEGER NOT NULL,
    total INTEGER NOT NULL,
    score_fraction REAL NOT NULL,
    duration_seconds REAL NOT NULL,
    date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_attempts_user ON attempts(user_id, attempt);

CREATE TABLE IF NOT EXISTS attempt_category_scores (
    attempt_id TEXT NOT NULL,
    category TEXT NOT NULL,
    correct INTEGER NOT NULL,
    total INTEGER NOT NULL,
    PRIMARY KEY (attempt_id, category),
    FOREIGN KEY (attempt_id) REFERENCES attempts(id) ON DELETE CASCADE
);
`

// SQLiteStore is the durable ProgressStore backend. Like the file backend
// it keeps the history in memory as well, so a write failure degrades to a
// warning instead of losing the attempt.
type SQLiteStore struct {
	db *sql.DB

	mu      sync.Mutex
	records map[string][]progress.Record
}

// NewSQLite opens (or creates) the attempt history database at dbPath and
// loads the existing history into memory.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLiteStore{
		db:      db,
		records: make(map[string][]progress.Record),
	}
	if err := s.loadAll(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load attempt history: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) loadAll() error {
	rows, err := s.db.Query(
		"SELECT id, user_id, attempt, mode, score, total, score_fraction, duration_seconds, date FROM attempts ORDER BY user_id, attempt",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var rec progress.Record
		var userID string
		var mode string
		var durationSeconds float64
		if err := rows.Scan(&rec.ID, &userID, &rec.Attempt, &mode, &rec.Score, &rec.Total, &rec.ScoreFraction, &durationSeconds, &rec.Date); err != nil {
			return err
		}
		rec.Mode = quizsession.Mode(mode)
		rec.Duration = time.Duration(durationSeconds * float64(time.Second))

		perCategory, err := s.loadCategoryScores(rec.ID)
		if err != nil {
			return err
		}
		rec.PerCategory = perCategory

		s.records[userID] = append(s.records[userID], rec)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadCategoryScores(attemptID string) (map[string]quizsession.CategoryScore, error) {
	rows, err := s.db.Query(
		"SELECT category, correct, total FROM attempt_category_scores WHERE attempt_id = ?",
		attemptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out map[string]quizsession.CategoryScore
	for rows.Next() {
		var cat string
		var cs quizsession.CategoryScore
		if err := rows.Scan(&cat, &cs.Correct, &cs.Total); err != nil {
			return nil, err
		}
		if out == nil {
			out = make(map[string]quizsession.CategoryScore)
		}
		out[cat] = cs
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Record(userID string, sum quizsession.Summary) (progress.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := progress.NewRecord(len(s.records[userID])+1, sum)
	s.records[userID] = append(s.records[userID], rec)

	if err := s.insert(userID, rec); err != nil {
		return rec, &PersistWarning{Err: err}
	}
	return rec, nil
}

func (s *SQLiteStore) insert(userID string, rec progress.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO attempts (id, user_id, attempt, mode, score, total, score_fraction, duration_seconds, date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		rec.ID, userID, rec.Attempt, string(rec.Mode), rec.Score, rec.Total, rec.ScoreFraction, rec.Duration.Seconds(), rec.Date,
	)
	if err != nil {
		return err
	}

	for cat, cs := range rec.PerCategory {
		_, err = tx.Exec(
			"INSERT INTO attempt_category_scores (attempt_id, category, correct, total) VALUES (?, ?, ?, ?)",
			rec.ID, cat, cs.Correct, cs.Total,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) History(userID string) ([]progress.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.records[userID]
	out := make([]progress.Record, len(recs))
	copy(out, recs)
	return out, nil
}

func (s *SQLiteStore) Aggregate(userID string) (progress.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.Aggregate(s.records[userID]), nil
}

func (s *SQLiteStore) ResetForUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, userID)

	tx, err := s.db.Begin()
	if err != nil {
		return &PersistWarning{Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM attempt_category_scores WHERE attempt_id IN (SELECT id FROM attempts WHERE user_id = ?)",
		userID,
	); err != nil {
		return &PersistWarning{Err: err}
	}
	if _, err := tx.Exec("DELETE FROM attempts WHERE user_id = ?", userID); err != nil {
		return &PersistWarning{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return &PersistWarning{Err: err}
	}
	return nil
}
