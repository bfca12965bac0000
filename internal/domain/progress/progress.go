package progress

import (
	"time"

	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
	"github.com/gflobe5510/CFA-App-3.0/internal/id"
)

// Record is one row of attempt history. Records are append-only: once
// written they are never edited, only cleared wholesale by a user reset.
type Record struct {
	ID            string
	Attempt       int
	Mode          quizsession.Mode
	Score         int
	Total         int
	ScoreFraction float64
	Duration      time.Duration
	Date          string
	PerCategory   map[string]quizsession.CategoryScore
}

// NewRecord builds the history row for a completed attempt. attempt is the
// 1-based sequential number within the user's history.
func NewRecord(attempt int, sum quizsession.Summary) Record {
	return Record{
		ID:            id.GenerateID(),
		Attempt:       attempt,
		Mode:          sum.Mode,
		Score:         sum.Score,
		Total:         sum.Total,
		ScoreFraction: sum.Fraction,
		Duration:      sum.Duration,
		Date:          sum.CompletedAt.Format("2006-01-02"),
		PerCategory:   sum.PerCategory,
	}
}

// CategoryAccuracy aggregates one category across all recorded attempts.
type CategoryAccuracy struct {
	Answered int
	Correct  int
	Accuracy float64
}

// Stats are the aggregate statistics derived from a user's history.
// AttemptCount zero is the "no data" result: averages stay zero and no
// division ever happens.
type Stats struct {
	AttemptCount    int
	AverageScore    float64
	AverageDuration time.Duration
	PerCategory     map[string]CategoryAccuracy
}

// Aggregate computes Stats from stored records.
func Aggregate(records []Record) Stats {
	if len(records) == 0 {
		return Stats{}
	}

	var fractionSum float64
	var durationSum time.Duration
	perCategory := make(map[string]CategoryAccuracy)

	for _, r := range records {
		fractionSum += r.ScoreFraction
		durationSum += r.Duration
		for cat, cs := range r.PerCategory {
			acc := perCategory[cat]
			acc.Answered += cs.Total
			acc.Correct += cs.Correct
			perCategory[cat] = acc
		}
	}
	for cat, acc := range perCategory {
		if acc.Answered > 0 {
			acc.Accuracy = float64(acc.Correct) / float64(acc.Answered)
		}
		perCategory[cat] = acc
	}

	n := len(records)
	return Stats{
		AttemptCount:    n,
		AverageScore:    fractionSum / float64(n),
		AverageDuration: durationSum / time.Duration(n),
		PerCategory:     perCategory,
	}
}
