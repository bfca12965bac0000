package quizsession

import "time"

// CategoryScore is the correct/total breakdown for one category within a
// completed attempt.
type CategoryScore struct {
	Correct int
	Total   int
}

// Summary is the final report of a completed attempt, handed to the
// progress store and then discarded together with the session.
type Summary struct {
	SessionID   string
	Mode        Mode
	ExamNumber  int
	Score       int
	Total       int
	Fraction    float64
	Duration    time.Duration
	CompletedAt time.Time
	PerCategory map[string]CategoryScore
}

// Summary computes the attempt's final report. Valid only once the session
// has completed.
func (s *Session) Summary() (Summary, error) {
	if s.state != StateCompleted {
		return Summary{}, ErrNotCompleted
	}

	perCategory := make(map[string]CategoryScore)
	for i, q := range s.questions {
		cs := perCategory[q.Category]
		cs.Total++
		if s.correct[i] {
			cs.Correct++
		}
		perCategory[q.Category] = cs
	}

	return Summary{
		SessionID:   s.ID,
		Mode:        s.Mode,
		ExamNumber:  s.ExamNumber,
		Score:       s.score,
		Total:       len(s.questions),
		Fraction:    float64(s.score) / float64(len(s.questions)),
		Duration:    s.completedAt.Sub(s.sessionStart),
		CompletedAt: s.completedAt,
		PerCategory: perCategory,
	}, nil
}
