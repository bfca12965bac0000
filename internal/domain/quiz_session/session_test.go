package quizsession_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/questionbank"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
)

func twoQuestions() []questionbank.Question {
	return []questionbank.Question{
		{
			ID:            "q1",
			Text:          "What is the capital of France?",
			Options:       []string{"Berlin", "Madrid", "Paris"},
			CorrectAnswer: "Paris",
			Category:      "Economics",
			Difficulty:    questionbank.DifficultyEasy,
		},
		{
			ID:            "q2",
			Text:          "What is 2 + 2?",
			Options:       []string{"3", "4", "5"},
			CorrectAnswer: "4",
			Category:      "Quantitative Methods",
			Difficulty:    questionbank.DifficultyEasy,
		},
	}
}

// stepClock returns a clock advancing by step on every call.
func stepClock(start time.Time, step time.Duration) quizsession.Clock {
	now := start
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestStart_EmptyQuestionListFails(t *testing.T) {
	_, err := quizsession.Start(nil, quizsession.ModeQuickSample)
	if !errors.Is(err, quizsession.ErrEmptySession) {
		t.Fatalf("expected ErrEmptySession, got %v", err)
	}
}

func TestSession_FullRunScoresAndCompletes(t *testing.T) {
	s, err := quizsession.StartWithClock(twoQuestions(), quizsession.ModeQuickSample,
		stepClock(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), time.Minute))
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.SubmitAnswer("Paris")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct {
		t.Error("expected first answer to be correct")
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}

	res, err = s.SubmitAnswer("3")
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Error("expected second answer to be wrong")
	}
	if res.CorrectAnswer != "4" {
		t.Errorf("expected correct answer %q in result, got %q", "4", res.CorrectAnswer)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}

	if s.State() != quizsession.StateCompleted {
		t.Errorf("expected Completed state, got %q", s.State())
	}
	if s.Score() != 1 {
		t.Errorf("expected score 1, got %d", s.Score())
	}
	if got := s.TimeSpent(); len(got) != 2 {
		t.Errorf("expected 2 recorded durations, got %d", len(got))
	}
}

func TestSubmitAnswer_ExactStringEquality(t *testing.T) {
	s, err := quizsession.Start(twoQuestions(), quizsession.ModeQuickSample)
	if err != nil {
		t.Fatal(err)
	}

	res, err := s.SubmitAnswer("paris")
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Error("expected case-different answer to count as wrong")
	}
}

func TestSubmitAnswer_DoubleSubmitRejectedWithoutMutation(t *testing.T) {
	s, err := quizsession.Start(twoQuestions(), quizsession.ModeQuickSample)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.SubmitAnswer("Paris"); err != nil {
		t.Fatal(err)
	}
	scoreAfterFirst := s.Score()
	durations := len(s.TimeSpent())

	_, err = s.SubmitAnswer("Paris")
	if !errors.Is(err, quizsession.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}

	if s.Score() != scoreAfterFirst {
		t.Error("second submission must not change the score")
	}
	if len(s.TimeSpent()) != durations {
		t.Error("second submission must not record another duration")
	}
}

func TestAdvance_RequiresSubmission(t *testing.T) {
	s, err := quizsession.Start(twoQuestions(), quizsession.ModeQuickSample)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Advance(); !errors.Is(err, quizsession.ErrNoSubmission) {
		t.Fatalf("expected ErrNoSubmission, got %v", err)
	}
}

func TestCompletedSessionRejectsFurtherMutation(t *testing.T) {
	s, err := quizsession.Start(twoQuestions(), quizsession.ModeQuickSample)
	if err != nil {
		t.Fatal(err)
	}
	for range twoQuestions() {
		if _, err := s.SubmitAnswer("Paris"); err != nil {
			t.Fatal(err)
		}
		if err := s.Advance(); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := s.SubmitAnswer("Paris"); !errors.Is(err, quizsession.ErrCompleted) {
		t.Errorf("expected ErrCompleted from SubmitAnswer, got %v", err)
	}
	if err := s.Advance(); !errors.Is(err, quizsession.ErrCompleted) {
		t.Errorf("expected ErrCompleted from Advance, got %v", err)
	}
	if _, _, err := s.Current(); !errors.Is(err, quizsession.ErrCompleted) {
		t.Errorf("expected ErrCompleted from Current, got %v", err)
	}
}

func TestCurrent_StillShowsQuestionAfterSubmission(t *testing.T) {
	s, err := quizsession.Start(twoQuestions(), quizsession.ModeQuickSample)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.SubmitAnswer("Berlin"); err != nil {
		t.Fatal(err)
	}

	q, pos, err := s.Current()
	if err != nil {
		t.Fatal(err)
	}
	if q.ID != "q1" || pos.Index != 0 || pos.Total != 2 {
		t.Errorf("expected the answered question at position 0/2, got %q at %d/%d", q.ID, pos.Index, pos.Total)
	}
}

func TestSummary_DurationsAndBreakdown(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, err := quizsession.StartWithClock(twoQuestions(), quizsession.ModeBalancedMixed,
		stepClock(start, 30*time.Second))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Summary(); !errors.Is(err, quizsession.ErrNotCompleted) {
		t.Fatalf("expected ErrNotCompleted before the last advance, got %v", err)
	}

	if _, err := s.SubmitAnswer("Paris"); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SubmitAnswer("5"); err != nil {
		t.Fatal(err)
	}
	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}

	sum, err := s.Summary()
	if err != nil {
		t.Fatal(err)
	}

	if sum.Score != 1 || sum.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", sum.Score, sum.Total)
	}
	if sum.Fraction != 0.5 {
		t.Errorf("expected fraction 0.5, got %v", sum.Fraction)
	}
	if sum.Duration <= 0 {
		t.Errorf("expected positive duration, got %v", sum.Duration)
	}

	econ := sum.PerCategory["Economics"]
	if econ.Correct != 1 || econ.Total != 1 {
		t.Errorf("expected Economics 1/1, got %d/%d", econ.Correct, econ.Total)
	}
	quant := sum.PerCategory["Quantitative Methods"]
	if quant.Correct != 0 || quant.Total != 1 {
		t.Errorf("expected Quantitative Methods 0/1, got %d/%d", quant.Correct, quant.Total)
	}
}

func TestTimeSpent_TracksElapsedPerQuestion(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s, err := quizsession.StartWithClock(twoQuestions(), quizsession.ModeQuickSample,
		stepClock(start, 45*time.Second))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.SubmitAnswer("Paris"); err != nil {
		t.Fatal(err)
	}

	durations := s.TimeSpent()
	if len(durations) != 1 {
		t.Fatalf("expected 1 duration, got %d", len(durations))
	}
	if durations[0] != 45*time.Second {
		t.Errorf("expected 45s on the first question, got %v", durations[0])
	}
}
