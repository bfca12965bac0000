package store_test

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/gflobe5510/CFA-App-3.0/internal/store"
)

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record("local", summary(3, 4, 5*time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record("local", summary(1, 4, 90*time.Second)); err != nil {
		t.Fatal(err)
	}
	written, err := s.History("local")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := store.NewSQLite(path)
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

func TestSQLite_SequentialAttemptsAndAggregate(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	first, err := s.Record("local", summary(3, 4, 4*time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Record("local", summary(1, 4, 2*time.Minute))
	if err != nil {
		t.Fatal(err)
	}

	if first.Attempt != 1 || second.Attempt != 2 {
		t.Errorf("expected attempts 1 and 2, got %d and %d", first.Attempt, second.Attempt)
	}

	stats, err := s.Aggregate("local")
	if err != nil {
		t.Fatal(err)
	}
	if stats.AttemptCount != 2 {
		t.Errorf("expected 2 attempts, got %d", stats.AttemptCount)
	}
	if stats.AverageScore != 0.5 {
		t.Errorf("expected average score 0.5, got %v", stats.AverageScore)
	}
	if stats.AverageDuration != 3*time.Minute {
		t.Errorf("expected average duration 3m, got %v", stats.AverageDuration)
	}
}

func TestSQLite_ResetForUserSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.db")

	s, err := store.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record("alice", summary(3, 4, time.Minute)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Record("bob", summary(2, 4, time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := s.ResetForUser("alice"); err != nil {
		t.Fatal(err)
	}
	s.Close()

	reopened, err := store.NewSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	aliceRecs, _ := reopened.History("alice")
	if len(aliceRecs) != 0 {
		t.Error("expected alice's history cleared after reopen")
	}
	bobRecs, _ := reopened.History("bob")
	if len(bobRecs) != 1 {
		t.Error("expected bob's history intact after reopen")
	}
}
