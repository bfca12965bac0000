package questionbank

import (
	"fmt"
	"slices"
)

// Difficulty tiers a question can be classified into.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties returns the tiers in ascending order. Bank buckets,
// concatenated practice order and the balanced exam builder all iterate it.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParseDifficulty classifies a raw difficulty value, defaulting to medium
// when the value is missing or unrecognized.
func ParseDifficulty(raw string) Difficulty {
	switch Difficulty(raw) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(raw)
	default:
		return DifficultyMedium
	}
}

const (
	minOptions = 3
	maxOptions = 5
)

// Question is one exam item. Built once at load time, immutable after.
type Question struct {
	ID            string
	Text          string
	Options       []string
	CorrectAnswer string
	Category      string
	Difficulty    Difficulty
	Explanation   string
}

// Validate checks the structural invariants: 3-5 options and a correct
// answer that is one of them.
func (q Question) Validate() error {
	if q.Text == "" {
		return fmt.Errorf("question text is empty")
	}
	if len(q.Options) < minOptions || len(q.Options) > maxOptions {
		return fmt.Errorf("question %q has %d options, want %d-%d", q.Text, len(q.Options), minOptions, maxOptions)
	}
	if !slices.Contains(q.Options, q.CorrectAnswer) {
		return fmt.Errorf("question %q: correct answer %q is not among its options", q.Text, q.CorrectAnswer)
	}
	return nil
}

// IsCorrect reports whether the selected option matches the correct answer.
// Comparison is exact string equality, no case or whitespace normalization.
func (q Question) IsCorrect(selected string) bool {
	return selected == q.CorrectAnswer
}
