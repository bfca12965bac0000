package quizsession

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/questionbank"
)

var (
	// ErrEmptySession is returned when an attempt is started with zero
	// questions. The caller must return to mode selection, never render a
	// question screen with no question.
	ErrEmptySession = errors.New("cannot start a session without questions")

	// ErrAlreadySubmitted is returned on a second submission for the same
	// question. The second call leaves score and timing untouched.
	ErrAlreadySubmitted = errors.New("answer already submitted for this question")

	// ErrNoSubmission is returned by Advance when the current question has
	// not been answered yet.
	ErrNoSubmission = errors.New("no answer submitted for the current question")

	// ErrCompleted is returned by any mutation on a finished session.
	ErrCompleted = errors.New("session already completed")

	// ErrNotCompleted is returned by Summary before the last Advance.
	ErrNotCompleted = errors.New("session still in progress")
)

// Mode is the exam-generation strategy an attempt was built with.
type Mode string

const (
	ModeSingleCategory   Mode = "single_category"
	ModeSingleDifficulty Mode = "single_difficulty"
	ModeBalancedMixed    Mode = "balanced_mixed"
	ModeRandomSample     Mode = "random_sample"
	ModeQuickSample      Mode = "quick_sample"
	ModeHardOnly         Mode = "hard_only"
)

// State of the attempt state machine:
// InProgress → AnswerSubmitted → InProgress (next) → ... → Completed.
type State string

const (
	StateInProgress      State = "in_progress"
	StateAnswerSubmitted State = "answer_submitted"
	StateCompleted       State = "completed"
)

// Clock supplies wall-clock time; injected so timing is testable.
type Clock func() time.Time

// Session is one attempt in progress. It is an explicit value owned by the
// caller and mutated only through SubmitAnswer and Advance; there is no
// ambient shared state.
type Session struct {
	ID         string
	Mode       Mode
	ExamNumber int

	questions     []questionbank.Question
	currentIndex  int
	score         int
	state         State
	correct       []bool
	timeSpent     []time.Duration
	sessionStart  time.Time
	questionStart time.Time
	completedAt   time.Time
	clock         Clock
}

// AnswerResult is what the UI shows after a submission.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string
}

// Progress locates the attempt for display: Index is zero-based and equals
// Total once the session is complete.
type Progress struct {
	Index int
	Total int
}

// Start begins an attempt over the given questions.
func Start(questions []questionbank.Question, mode Mode) (*Session, error) {
	return StartWithClock(questions, mode, time.Now)
}

// StartWithClock is Start with an injected clock.
func StartWithClock(questions []questionbank.Question, mode Mode, clock Clock) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}

	qs := make([]questionbank.Question, len(questions))
	copy(qs, questions)

	now := clock()
	return &Session{
		ID:            uuid.New().String(),
		Mode:          mode,
		questions:     qs,
		state:         StateInProgress,
		sessionStart:  now,
		questionStart: now,
		clock:         clock,
	}, nil
}

// Current returns the active question and the attempt's position. After a
// submission it still returns the answered question, so the UI can show
// the explanation before advancing.
func (s *Session) Current() (questionbank.Question, Progress, error) {
	if s.state == StateCompleted {
		return questionbank.Question{}, s.Position(), ErrCompleted
	}
	return s.questions[s.currentIndex], s.Position(), nil
}

// Position reports currentIndex / total for progress display.
func (s *Session) Position() Progress {
	return Progress{Index: s.currentIndex, Total: len(s.questions)}
}

// SubmitAnswer records the answer for the current question. Elapsed time
// since the question was shown is appended, the score is incremented on an
// exact match, and the session moves to AnswerSubmitted. A second call
// without an intervening Advance is rejected without touching any state.
func (s *Session) SubmitAnswer(selected string) (AnswerResult, error) {
	switch s.state {
	case StateCompleted:
		return AnswerResult{}, ErrCompleted
	case StateAnswerSubmitted:
		return AnswerResult{}, ErrAlreadySubmitted
	}

	q := s.questions[s.currentIndex]
	correct := q.IsCorrect(selected)

	s.timeSpent = append(s.timeSpent, s.clock().Sub(s.questionStart))
	s.correct = append(s.correct, correct)
	if correct {
		s.score++
	}
	s.state = StateAnswerSubmitted

	return AnswerResult{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}, nil
}

// Advance moves past the answered question. After the last question the
// session transitions to Completed and records the completion time.
func (s *Session) Advance() error {
	switch s.state {
	case StateCompleted:
		return ErrCompleted
	case StateInProgress:
		return ErrNoSubmission
	}

	s.currentIndex++
	if s.currentIndex == len(s.questions) {
		s.state = StateCompleted
		s.completedAt = s.clock()
		return nil
	}

	s.questionStart = s.clock()
	s.state = StateInProgress
	return nil
}

func (s *Session) State() State { return s.state }

func (s *Session) Score() int { return s.score }

// TimeSpent returns the per-question durations recorded so far, parallel
// to the questions up to the current index.
func (s *Session) TimeSpent() []time.Duration {
	out := make([]time.Duration, len(s.timeSpent))
	copy(out, s.timeSpent)
	return out
}

// Questions returns a copy of the attempt's fixed question list.
func (s *Session) Questions() []questionbank.Question {
	out := make([]questionbank.Question, len(s.questions))
	copy(out, s.questions)
	return out
}
