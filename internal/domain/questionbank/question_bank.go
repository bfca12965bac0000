package questionbank

import (
	"fmt"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/category"
	"github.com/gflobe5510/CFA-App-3.0/internal/id"
)

// RawQuestion is one record of the question bank file.
// Topic and difficulty are free text and get normalized during Build.
type RawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Topic         string   `json:"topic,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
}

// CategoryUncategorized collects records whose topic field is empty.
// It only appears in Categories() when at least one such record exists.
const CategoryUncategorized = "Uncategorized"

// Bank indexes questions by canonical category and difficulty.
// Every canonical category is present even when empty, so pickers can
// render all categories with a zero count instead of omitting them.
// A Bank is built once and never mutated afterwards.
type Bank struct {
	byCategory map[string]map[Difficulty][]Question
	categories []string // canonical order, then extra topics in load order
}

// Build indexes raw records into a Bank. Topics are resolved through the
// category alias table (unknown topics become their own category verbatim),
// difficulty defaults to medium, and every record is validated.
// A record that fails validation fails the whole build with ErrFormat.
func Build(raw []RawQuestion) (*Bank, error) {
	b := &Bank{
		byCategory: make(map[string]map[Difficulty][]Question),
		categories: category.Canonical(),
	}
	for _, name := range b.categories {
		b.byCategory[name] = emptyBuckets()
	}

	for i, r := range raw {
		q := Question{
			ID:            id.GenerateID(),
			Text:          r.Question,
			Options:       r.Options,
			CorrectAnswer: r.CorrectAnswer,
			Category:      category.Resolve(r.Topic),
			Difficulty:    ParseDifficulty(r.Difficulty),
			Explanation:   r.Explanation,
		}
		if q.Category == "" {
			q.Category = CategoryUncategorized
		}
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrFormat, i, err)
		}

		if _, ok := b.byCategory[q.Category]; !ok {
			b.byCategory[q.Category] = emptyBuckets()
			b.categories = append(b.categories, q.Category)
		}
		b.byCategory[q.Category][q.Difficulty] = append(b.byCategory[q.Category][q.Difficulty], q)
	}

	return b, nil
}

func emptyBuckets() map[Difficulty][]Question {
	buckets := make(map[Difficulty][]Question, 3)
	for _, d := range Difficulties() {
		buckets[d] = nil
	}
	return buckets
}

// Categories returns every category name the bank knows, canonical ones
// first (always all ten, even with zero questions), then any extra topics
// in the order they were first seen.
func (b *Bank) Categories() []string {
	out := make([]string, len(b.categories))
	copy(out, b.categories)
	return out
}

// CountFor returns the total number of questions across all difficulties
// for one category. Unknown categories count zero.
func (b *Bank) CountFor(cat string) int {
	buckets, ok := b.byCategory[cat]
	if !ok {
		return 0
	}
	n := 0
	for _, qs := range buckets {
		n += len(qs)
	}
	return n
}

// QuestionsFor returns the questions of one category at one difficulty,
// in load order. The returned slice is a copy.
func (b *Bank) QuestionsFor(cat string, d Difficulty) []Question {
	buckets, ok := b.byCategory[cat]
	if !ok {
		return nil
	}
	qs := buckets[d]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// AllFor returns every question of one category, easy then medium then hard.
func (b *Bank) AllFor(cat string) []Question {
	var out []Question
	for _, d := range Difficulties() {
		out = append(out, b.QuestionsFor(cat, d)...)
	}
	return out
}

// All returns every question in the bank, grouped by category in category
// order, each category easy to hard.
func (b *Bank) All() []Question {
	var out []Question
	for _, cat := range b.categories {
		out = append(out, b.AllFor(cat)...)
	}
	return out
}

// TotalCount is the number of questions in the whole bank.
func (b *Bank) TotalCount() int {
	n := 0
	for _, cat := range b.categories {
		n += b.CountFor(cat)
	}
	return n
}
