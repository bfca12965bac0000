package store

import (
	"errors"
	"fmt"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/progress"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
)

var (
	ErrNotFound = errors.New("not found")
)

// ProgressStore persists attempt history, keyed by a per-user identity
// token. Histories of different users never share state.
type ProgressStore interface {
	// Record appends one completed attempt to the user's history. The
	// attempt number is assigned sequentially from the existing history.
	// A durable-write failure is returned as a *PersistWarning: the
	// record is still retained in memory for the rest of the process and
	// the returned Record is valid.
	Record(userID string, sum quizsession.Summary) (progress.Record, error)

	// History returns the user's records in attempt order. An unknown
	// user has an empty history, not an error.
	History(userID string) ([]progress.Record, error)

	// Aggregate derives the summary statistics from the stored records.
	Aggregate(userID string) (progress.Stats, error)

	// ResetForUser clears every record for one user identity.
	ResetForUser(userID string) error

	Close() error
}

// PersistWarning reports that a record could not be durably written but
// was kept in memory. Callers log it and carry on; the user keeps their
// immediate feedback.
type PersistWarning struct {
	Err error
}

func (w *PersistWarning) Error() string {
	return fmt.Sprintf("progress not durably saved: %v", w.Err)
}

func (w *PersistWarning) Unwrap() error { return w.Err }
