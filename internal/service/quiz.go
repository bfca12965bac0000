package service

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/progress"
	"github.com/gflobe5510/CFA-App-3.0/internal/domain/questionbank"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
	"github.com/gflobe5510/CFA-App-3.0/internal/domain/selection"
	"github.com/gflobe5510/CFA-App-3.0/internal/store"
)

var (
	// ErrUnknownMode is returned for a start request naming no known
	// exam-generation strategy.
	ErrUnknownMode = errors.New("unknown exam mode")

	// ErrNoActiveSession is returned when a user submits or advances
	// without an attempt in progress.
	ErrNoActiveSession = errors.New("no active session for this user")
)

// StartRequest carries the mode choice and its parameters.
type StartRequest struct {
	Mode       quizsession.Mode
	Category   string
	Difficulty questionbank.Difficulty
	ExamNumber int
	Limit      int // random sample; 0 means the default
	Size       int // quick sample; 0 means the default
}

// AdvanceResult reports what happened after moving past a question. When
// the attempt finished, Summary and Record carry the final report; Warning
// holds a non-fatal persistence failure the UI may surface.
type AdvanceResult struct {
	Done    bool
	Summary *quizsession.Summary
	Record  *progress.Record
	Warning error
}

// QuizService owns the active attempts, one per user identity. Each
// user's session and progress view are independent; the only shared state
// is the immutable question bank.
type QuizService struct {
	bank     *questionbank.Bank
	selector *selection.Selector
	progress store.ProgressStore
	logger   *slog.Logger
	clock    quizsession.Clock

	mu       sync.Mutex
	sessions map[string]*quizsession.Session
}

func New(bank *questionbank.Bank, selector *selection.Selector, progressStore store.ProgressStore, logger *slog.Logger) *QuizService {
	return &QuizService{
		bank:     bank,
		selector: selector,
		progress: progressStore,
		logger:   logger,
		clock:    time.Now,
		sessions: make(map[string]*quizsession.Session),
	}
}

// WithClock replaces the wall clock, for tests.
func (s *QuizService) WithClock(clock quizsession.Clock) *QuizService {
	s.clock = clock
	return s
}

// Bank exposes the immutable question bank for count/picker rendering.
func (s *QuizService) Bank() *questionbank.Bank { return s.bank }

// StartSession selects questions for the requested mode and begins a new
// attempt for the user. An existing unfinished attempt is discarded, the
// same way closing the quiz page abandons it.
func (s *QuizService) StartSession(userID string, req StartRequest) (*quizsession.Session, error) {
	questions, err := s.selectQuestions(req)
	if err != nil {
		return nil, err
	}

	sess, err := quizsession.StartWithClock(questions, req.Mode, s.clock)
	if err != nil {
		return nil, err
	}
	sess.ExamNumber = req.ExamNumber

	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()

	s.logger.Info("session started",
		"user_id", userID,
		"mode", string(req.Mode),
		"questions", len(questions),
	)
	return sess, nil
}

func (s *QuizService) selectQuestions(req StartRequest) ([]questionbank.Question, error) {
	switch req.Mode {
	case quizsession.ModeSingleCategory:
		return s.selector.SingleCategory(req.Category)
	case quizsession.ModeSingleDifficulty:
		return s.selector.SingleDifficulty(req.Difficulty)
	case quizsession.ModeBalancedMixed:
		return s.selector.BalancedMixed(req.ExamNumber)
	case quizsession.ModeRandomSample:
		return s.selector.RandomSample(req.Limit)
	case quizsession.ModeQuickSample:
		return s.selector.QuickSample(req.Size)
	case quizsession.ModeHardOnly:
		return s.selector.HardOnly()
	default:
		return nil, ErrUnknownMode
	}
}

// Session returns the user's attempt in progress.
func (s *QuizService) Session(userID string) (*quizsession.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return sess, nil
}

// SubmitAnswer records the user's answer for the current question.
func (s *QuizService) SubmitAnswer(userID, selected string) (quizsession.AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return quizsession.AnswerResult{}, ErrNoActiveSession
	}
	return sess.SubmitAnswer(selected)
}

// Advance moves the user's attempt past the answered question. On the last
// question the attempt completes: its summary is recorded in the user's
// history, the session is discarded, and a persistence failure is logged
// as a warning while the in-memory record stands.
func (s *QuizService) Advance(userID string) (AdvanceResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return AdvanceResult{}, ErrNoActiveSession
	}

	if err := sess.Advance(); err != nil {
		return AdvanceResult{}, err
	}
	if sess.State() != quizsession.StateCompleted {
		return AdvanceResult{}, nil
	}

	sum, err := sess.Summary()
	if err != nil {
		return AdvanceResult{}, err
	}
	delete(s.sessions, userID)

	rec, err := s.progress.Record(userID, sum)
	result := AdvanceResult{Done: true, Summary: &sum, Record: &rec}

	var warn *store.PersistWarning
	if errors.As(err, &warn) {
		s.logger.Warn("progress record not durably saved",
			"user_id", userID,
			"error", warn.Err,
		)
		result.Warning = warn
		return result, nil
	}
	if err != nil {
		return AdvanceResult{}, err
	}

	s.logger.Info("session completed",
		"user_id", userID,
		"score", sum.Score,
		"total", sum.Total,
	)
	return result, nil
}

// Abandon discards the user's attempt in progress without recording it.
func (s *QuizService) Abandon(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[userID]; !ok {
		return ErrNoActiveSession
	}
	delete(s.sessions, userID)
	return nil
}

// History returns the user's attempt records.
func (s *QuizService) History(userID string) ([]progress.Record, error) {
	return s.progress.History(userID)
}

// Aggregate returns the user's summary statistics.
func (s *QuizService) Aggregate(userID string) (progress.Stats, error) {
	return s.progress.Aggregate(userID)
}

// ResetProgress clears the user's attempt history.
func (s *QuizService) ResetProgress(userID string) error {
	err := s.progress.ResetForUser(userID)

	var warn *store.PersistWarning
	if errors.As(err, &warn) {
		s.logger.Warn("progress reset not durably saved",
			"user_id", userID,
			"error", warn.Err,
		)
		return nil
	}
	return err
}
