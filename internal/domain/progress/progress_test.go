package progress_test

import (
	"testing"
	"time"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/progress"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
)

func TestAggregate_EmptyHistoryIsNoData(t *testing.T) {
	stats := progress.Aggregate(nil)

	if stats.AttemptCount != 0 {
		t.Errorf("expected zero attempts, got %d", stats.AttemptCount)
	}
	if stats.AverageScore != 0 || stats.AverageDuration != 0 {
		t.Error("expected zero averages on empty history")
	}
}

func TestAggregate_Averages(t *testing.T) {
	records := []progress.Record{
		{Attempt: 1, ScoreFraction: 0.75, Duration: 4 * time.Minute},
		{Attempt: 2, ScoreFraction: 0.25, Duration: 2 * time.Minute},
	}

	stats := progress.Aggregate(records)

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

func TestAggregate_SingleAttemptFraction(t *testing.T) {
	stats := progress.Aggregate([]progress.Record{
		{Attempt: 1, Score: 3, Total: 4, ScoreFraction: 0.75, Duration: time.Minute},
	})

	if stats.AverageScore != 0.75 {
		t.Errorf("expected 0.75 after one 3/4 attempt, got %v", stats.AverageScore)
	}
}

func TestAggregate_PerCategoryAccuracy(t *testing.T) {
	records := []progress.Record{
		{
			Attempt:       1,
			ScoreFraction: 0.5,
			PerCategory: map[string]quizsession.CategoryScore{
				"Economics": {Correct: 1, Total: 2},
			},
		},
		{
			Attempt:       2,
			ScoreFraction: 1,
			PerCategory: map[string]quizsession.CategoryScore{
				"Economics": {Correct: 2, Total: 2},
			},
		},
	}

	stats := progress.Aggregate(records)

	econ := stats.PerCategory["Economics"]
	if econ.Answered != 4 || econ.Correct != 3 {
		t.Errorf("expected Economics 3/4, got %d/%d", econ.Correct, econ.Answered)
	}
	if econ.Accuracy != 0.75 {
		t.Errorf("expected accuracy 0.75, got %v", econ.Accuracy)
	}
}

func TestNewRecord_FillsFieldsFromSummary(t *testing.T) {
	sum := quizsession.Summary{
		Mode:        quizsession.ModeBalancedMixed,
		Score:       3,
		Total:       4,
		Fraction:    0.75,
		Duration:    5 * time.Minute,
		CompletedAt: time.Date(2026, 3, 1, 17, 30, 0, 0, time.UTC),
		PerCategory: map[string]quizsession.CategoryScore{"Economics": {Correct: 3, Total: 4}},
	}

	rec := progress.NewRecord(7, sum)

	if rec.Attempt != 7 {
		t.Errorf("expected attempt 7, got %d", rec.Attempt)
	}
	if rec.ID == "" {
		t.Error("expected a generated record ID")
	}
	if rec.Date != "2026-03-01" {
		t.Errorf("expected date 2026-03-01, got %q", rec.Date)
	}
	if rec.ScoreFraction != 0.75 || rec.Score != 3 || rec.Total != 4 {
		t.Errorf("unexpected score fields: %+v", rec)
	}
}
