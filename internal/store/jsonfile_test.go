package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
	"github.com/gflobe5510/CFA-App-3.0/internal/store"
)

func summary(score, total int, d time.Duration) quizsession.Summary {
	return quizsession.Summary{
		SessionID:   "s1",
		Mode:        quizsession.ModeQuickSample,
		Score:       score,
		Total:       total,
		Fraction:    float64(score) / float64(total),
		Duration:    d,
		CompletedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		PerCategory: map[string]quizsession.CategoryScore{
			"Economics": {Correct: score, Total: total},
		},
	}
}

func TestJSONFile_FirstRunHasNoHistory(t *testing.T) {
	s, err := store.NewJSONFile(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatalf("missing file must be tolerated on first run: %v", err)
	}
	defer s.Close()

	recs, err := s.History("local")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty history, got %d records", len(recs))
	}

	stats, err := s.Aggregate("local")
	if err != nil {
		t.Fatal(err)
	}
	if stats.AttemptCount != 0 {
		t.Errorf("expected no-data aggregate, got %+v", stats)
	}
}

func TestJSONFile_RecordAssignsSequentialAttempts(t *testing.T) {
	s, err := store.NewJSONFile(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	first, err := s.Record("local", summary(3, 4, 5*time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Record("local", summary(2, 4, 3*time.Minute))
	if err != nil {
		t.Fatal(err)
	}

	if first.Attempt != 1 || second.Attempt != 2 {
		t.Errorf("expected attempts 1 and 2, got %d and %d", first.Attempt, second.Attempt)
	}
}

func TestJSONFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")

	s, err := store.NewJSONFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record("local", summary(3, 4, 5*time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record("local", summary(4, 4, 2*time.Minute)); err != nil {
		t.Fatal(err)
	}
	written, err := s.History("local")
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	reopened, err := store.NewJSONFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	read, err := reopened.History("local")
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(written, read) {
		t.Errorf("round trip mismatch:\nwrote %+v\nread  %+v", written, read)
	}
}

func TestJSONFile_UsersAreIsolated(t *testing.T) {
	s, err := store.NewJSONFile(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Record("alice", summary(3, 4, time.Minute)); err != nil {
		t.Fatal(err)
	}

	recs, err := s.History("bob")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("expected bob's history to be empty, got %d records", len(recs))
	}
}

func TestJSONFile_ResetForUserClearsOnlyThatUser(t *testing.T) {
	s, err := store.NewJSONFile(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Record("alice", summary(3, 4, time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record("bob", summary(1, 4, time.Minute)); err != nil {
		t.Fatal(err)
	}

	if err := s.ResetForUser("alice"); err != nil {
		t.Fatal(err)
	}

	aliceRecs, _ := s.History("alice")
	if len(aliceRecs) != 0 {
		t.Error("expected alice's history cleared")
	}
	bobRecs, _ := s.History("bob")
	if len(bobRecs) != 1 {
		t.Error("expected bob's history untouched")
	}
}

func TestJSONFile_AggregateAfterOneAttempt(t *testing.T) {
	s, err := store.NewJSONFile(filepath.Join(t.TempDir(), "progress.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Record("local", summary(3, 4, 4*time.Minute)); err != nil {
		t.Fatal(err)
	}

	stats, err := s.Aggregate("local")
	if err != nil {
		t.Fatal(err)
	}
	if stats.AverageScore != 0.75 {
		t.Errorf("expected average score 0.75, got %v", stats.AverageScore)
	}
	if stats.AverageDuration != 4*time.Minute {
		t.Errorf("expected average duration 4m, got %v", stats.AverageDuration)
	}
}

func TestJSONFile_WriteFailureKeepsRecordInMemory(t *testing.T) {
	dir := t.TempDir()
	s, err := store.NewJSONFile(filepath.Join(dir, "progress.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	// Seed one good write, then make the path unwritable by turning it
	// into a directory.
	if _, err := s.Record("local", summary(3, 4, time.Minute)); err != nil {
		t.Fatal(err)
	}

	blocked, err := store.NewJSONFile(filepath.Join(dir, "blocked"))
	if err != nil {
		t.Fatal(err)
	}
	defer blocked.Close()
	if err := os.Mkdir(filepath.Join(dir, "blocked"), 0o755); err != nil {
		t.Fatal(err)
	}

	rec, err := blocked.Record("local", summary(2, 4, time.Minute))

	var warn *store.PersistWarning
	if !errors.As(err, &warn) {
		t.Fatalf("expected *PersistWarning, got %v", err)
	}
	if rec.Attempt != 1 {
		t.Errorf("expected a valid record despite the warning, got %+v", rec)
	}

	recs, err := blocked.History("local")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Errorf("expected the record retained in memory, got %d records", len(recs))
	}
}
