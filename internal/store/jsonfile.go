package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/progress"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
)

// historyFile is the on-disk shape: one array of per-attempt records per
// user identity. The whole structure is rewritten on every append
// (read-modify-write, not a log append).
type historyFile struct {
	Version int                        `json:"version"`
	Users   map[string][]historyRecord `json:"users"`
}

type historyRecord struct {
	ID              string                   `json:"id"`
	Attempt         int                      `json:"attempt"`
	Mode            string                   `json:"mode"`
	Score           int                      `json:"score"`
	Total           int                      `json:"total"`
	ScoreFraction   float64                  `json:"score_fraction"`
	DurationSeconds float64                  `json:"duration_seconds"`
	Date            string                   `json:"date"`
	PerCategory     map[string]categoryScore `json:"per_category,omitempty"`
}

type categoryScore struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

const historyFileVersion = 1

// JSONFileStore keeps attempt history in a single JSON file. All reads are
// served from memory; the file exists so history survives restarts. A
// failed write degrades to in-memory operation with a warning rather than
// losing the attempt.
type JSONFileStore struct {
	path string

	mu      sync.Mutex
	records map[string][]progress.Record
}

// NewJSONFile opens (or initializes) the history file at path. A missing
// file is the normal first-run state and yields an empty history; a file
// that exists but cannot be parsed is an error, since silently discarding
// history would lose data on the next write.
func NewJSONFile(path string) (*JSONFileStore, error) {
	s := &JSONFileStore{
		path:    path,
		records: make(map[string][]progress.Record),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress history: %w", err)
	}

	var f historyFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse progress history: %w", err)
	}
	for user, recs := range f.Users {
		for _, r := range recs {
			s.records[user] = append(s.records[user], fromHistoryRecord(r))
		}
	}
	return s, nil
}

func (s *JSONFileStore) Record(userID string, sum quizsession.Summary) (progress.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := progress.NewRecord(len(s.records[userID])+1, sum)
	s.records[userID] = append(s.records[userID], rec)

	if err := s.flushLocked(); err != nil {
		return rec, &PersistWarning{Err: err}
	}
	return rec, nil
}

func (s *JSONFileStore) History(userID string) ([]progress.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs := s.records[userID]
	out := make([]progress.Record, len(recs))
	copy(out, recs)
	return out, nil
}

func (s *JSONFileStore) Aggregate(userID string) (progress.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return progress.Aggregate(s.records[userID]), nil
}

func (s *JSONFileStore) ResetForUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, userID)
	if err := s.flushLocked(); err != nil {
		return &PersistWarning{Err: err}
	}
	return nil
}

func (s *JSONFileStore) Close() error { return nil }

// flushLocked rewrites the whole file from the in-memory state.
// Caller holds s.mu.
func (s *JSONFileStore) flushLocked() error {
	f := historyFile{
		Version: historyFileVersion,
		Users:   make(map[string][]historyRecord, len(s.records)),
	}
	for user, recs := range s.records {
		rows := make([]historyRecord, 0, len(recs))
		for _, r := range recs {
			rows = append(rows, toHistoryRecord(r))
		}
		f.Users[user] = rows
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func toHistoryRecord(r progress.Record) historyRecord {
	row := historyRecord{
		ID:              r.ID,
		Attempt:         r.Attempt,
		Mode:            string(r.Mode),
		Score:           r.Score,
		Total:           r.Total,
		ScoreFraction:   r.ScoreFraction,
		DurationSeconds: r.Duration.Seconds(),
		Date:            r.Date,
	}
	if len(r.PerCategory) > 0 {
		row.PerCategory = make(map[string]categoryScore, len(r.PerCategory))
		for cat, cs := range r.PerCategory {
			row.PerCategory[cat] = categoryScore{Correct: cs.Correct, Total: cs.Total}
		}
	}
	return row
}

func fromHistoryRecord(r historyRecord) progress.Record {
	rec := progress.Record{
		ID:            r.ID,
		Attempt:       r.Attempt,
		Mode:          quizsession.Mode(r.Mode),
		Score:         r.Score,
		Total:         r.Total,
		ScoreFraction: r.ScoreFraction,
		Duration:      time.Duration(r.DurationSeconds * float64(time.Second)),
		Date:          r.Date,
	}
	if len(r.PerCategory) > 0 {
		rec.PerCategory = make(map[string]quizsession.CategoryScore, len(r.PerCategory))
		for cat, cs := range r.PerCategory {
			rec.PerCategory[cat] = quizsession.CategoryScore{Correct: cs.Correct, Total: cs.Total}
		}
	}
	return rec
}
