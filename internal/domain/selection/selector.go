package selection

import (
	"errors"
	"math/rand"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/questionbank"
)

// ErrInsufficientQuestions means the bank cannot satisfy a mode's
// constraints. Recoverable: the caller stays on the mode-selection screen
// and shows the message, no session is created.
var ErrInsufficientQuestions = errors.New("not enough questions for the requested mode")

// Selection caps shared by the exam modes.
const (
	PerCategoryPerTier = 2  // balanced/single-difficulty: per category, per tier
	TierCap            = 10 // balanced: pool cap per difficulty tier
	BalancedMinimum    = 15 // balanced: minimum questions available in the bank
	HardPerCategory    = 3  // hard-only: per category

	DefaultRandomLimit = 20
	DefaultQuickSize   = 5
)

// Policy holds the selection decisions that are deliberate, overridable
// choices rather than fixed rules.
type Policy struct {
	// ShuffleCategoryPractice randomizes single-category sessions. When
	// false they run easy, medium, hard in load order.
	ShuffleCategoryPractice bool
}

// DefaultPolicy shuffles category practice, for exam realism.
func DefaultPolicy() Policy {
	return Policy{ShuffleCategoryPractice: true}
}

// Selector builds question lists for one attempt. All modes are pure
// functions of the bank, their parameters and the random source; the
// source is injected so tests can assert distributional properties.
type Selector struct {
	bank   *questionbank.Bank
	rng    *rand.Rand
	policy Policy
}

func New(bank *questionbank.Bank, rng *rand.Rand, policy Policy) *Selector {
	return &Selector{bank: bank, rng: rng, policy: policy}
}

// SingleCategory selects every question of one category across all
// difficulties. Order follows the policy: shuffled by default, otherwise
// easy to hard concatenation.
func (s *Selector) SingleCategory(cat string) ([]questionbank.Question, error) {
	qs := s.bank.AllFor(cat)
	if len(qs) == 0 {
		return nil, ErrInsufficientQuestions
	}
	if s.policy.ShuffleCategoryPractice {
		shuffle(s.rng, qs)
	}
	return qs, nil
}

// SingleDifficulty samples up to two questions per category at the given
// difficulty, pooled and shuffled.
func (s *Selector) SingleDifficulty(d questionbank.Difficulty) ([]questionbank.Question, error) {
	var pool []questionbank.Question
	for _, cat := range s.bank.Categories() {
		pool = append(pool, sampleUpTo(s.rng, s.bank.QuestionsFor(cat, d), PerCategoryPerTier)...)
	}
	if len(pool) == 0 {
		return nil, ErrInsufficientQuestions
	}
	shuffle(s.rng, pool)
	return pool, nil
}

// BalancedMixed builds a balanced exam: per difficulty tier, up to two
// questions per category, the tier pool capped at ten; the three tiers are
// concatenated and shuffled. A bank holding fewer than fifteen questions
// in total cannot produce a meaningful balanced paper.
//
// An examNumber greater than zero seeds a dedicated random source, so the
// same exam number always reproduces the same paper from the same bank.
func (s *Selector) BalancedMixed(examNumber int) ([]questionbank.Question, error) {
	if s.bank.TotalCount() < BalancedMinimum {
		return nil, ErrInsufficientQuestions
	}

	rng := s.rng
	if examNumber > 0 {
		rng = rand.New(rand.NewSource(int64(examNumber)))
	}

	var selected []questionbank.Question
	for _, d := range questionbank.Difficulties() {
		var tier []questionbank.Question
		for _, cat := range s.bank.Categories() {
			tier = append(tier, sampleUpTo(rng, s.bank.QuestionsFor(cat, d), PerCategoryPerTier)...)
		}
		if len(tier) > TierCap {
			shuffle(rng, tier)
			tier = tier[:TierCap]
		}
		selected = append(selected, tier...)
	}

	shuffle(rng, selected)
	return selected, nil
}

// RandomSample pools every question, shuffles, and truncates to limit.
// A non-positive limit uses the default of twenty.
func (s *Selector) RandomSample(limit int) ([]questionbank.Question, error) {
	if limit <= 0 {
		limit = DefaultRandomLimit
	}
	pool := s.bank.All()
	if len(pool) == 0 {
		return nil, ErrInsufficientQuestions
	}
	shuffle(s.rng, pool)
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool, nil
}

// QuickSample draws exactly size distinct questions from the whole bank,
// failing when the pool is too small. A non-positive size uses five.
func (s *Selector) QuickSample(size int) ([]questionbank.Question, error) {
	if size <= 0 {
		size = DefaultQuickSize
	}
	pool := s.bank.All()
	if len(pool) < size {
		return nil, ErrInsufficientQuestions
	}
	shuffle(s.rng, pool)
	return pool[:size], nil
}

// HardOnly samples up to three hard questions per category, pooled and
// shuffled.
func (s *Selector) HardOnly() ([]questionbank.Question, error) {
	var pool []questionbank.Question
	for _, cat := range s.bank.Categories() {
		pool = append(pool, sampleUpTo(s.rng, s.bank.QuestionsFor(cat, questionbank.DifficultyHard), HardPerCategory)...)
	}
	if len(pool) == 0 {
		return nil, ErrInsufficientQuestions
	}
	shuffle(s.rng, pool)
	return pool, nil
}

// sampleUpTo draws at most n questions without replacement.
func sampleUpTo(rng *rand.Rand, qs []questionbank.Question, n int) []questionbank.Question {
	if len(qs) <= n {
		out := make([]questionbank.Question, len(qs))
		copy(out, qs)
		return out
	}
	picked := make([]questionbank.Question, len(qs))
	copy(picked, qs)
	shuffle(rng, picked)
	return picked[:n]
}

func shuffle(rng *rand.Rand, qs []questionbank.Question) {
	rng.Shuffle(len(qs), func(i, j int) {
		qs[i], qs[j] = qs[j], qs[i]
	})
}
