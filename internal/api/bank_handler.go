// internal/api/bank_handler.go
package api

import (
	"fmt"
	"net/http"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/category"
	"github.com/gflobe5510/CFA-App-3.0/internal/domain/questionbank"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
	"github.com/gflobe5510/CFA-App-3.0/internal/domain/selection"
)

// ── Request / Response types ────────────────────────────────────────────────

type CategoryInfo struct {
	Name          string `json:"name"`
	QuestionCount int    `json:"question_count"`
	Selectable    bool   `json:"selectable"`
}

type ListCategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// QuestionView is a question as shown to the client. The correct answer
// and explanation are withheld until an answer is submitted.
type QuestionView struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Category   string   `json:"category"`
	Difficulty string   `json:"difficulty"`
}

type ListQuestionsResponse struct {
	Category  string         `json:"category"`
	Questions []QuestionView `json:"questions"`
}

type ModeInfo struct {
	Mode      string `json:"mode"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type ListModesResponse struct {
	Modes []ModeInfo `json:"modes"`
}

func questionView(q questionbank.Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Text:       q.Text,
		Options:    q.Options,
		Category:   q.Category,
		Difficulty: string(q.Difficulty),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listCategories lists every category with its question count.
// @Summary      List categories
// @Description  List all categories with question counts. Categories with zero questions are listed but not selectable.
// @Tags         Bank
// @Produce      json
// @Success      200  {object}  ListCategoriesResponse
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	bank := h.svc.Bank()

	resp := ListCategoriesResponse{Categories: make([]CategoryInfo, 0)}
	for _, cat := range bank.Categories() {
		count := bank.CountFor(cat)
		resp.Categories = append(resp.Categories, CategoryInfo{
			Name:          cat,
			QuestionCount: count,
			Selectable:    count > 0,
		})
	}

	respondJSON(w, http.StatusOK, resp)
}

// listQuestions lists the questions of one category.
// @Summary      List questions in a category
// @Description  List the questions of a category, optionally filtered by difficulty. Correct answers are not included.
// @Tags         Bank
// @Produce      json
// @Param        category    path   string  true   "Category name or alias"
// @Param        difficulty  query  string  false  "easy, medium or hard"
// @Success      200  {object}  ListQuestionsResponse
// @Failure      400  {object}  map[string]string  "unknown difficulty"
// @Router       /categories/{category}/questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	bank := h.svc.Bank()
	cat := category.Resolve(r.PathValue("category"))

	var questions []questionbank.Question
	if raw := r.URL.Query().Get("difficulty"); raw != "" {
		d, ok := parseDifficulty(raw)
		if !ok {
			respondError(w, http.StatusBadRequest, "unknown difficulty: "+raw)
			return
		}
		questions = bank.QuestionsFor(cat, d)
	} else {
		questions = bank.AllFor(cat)
	}

	resp := ListQuestionsResponse{Category: cat, Questions: make([]QuestionView, 0, len(questions))}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, questionView(q))
	}

	respondJSON(w, http.StatusOK, resp)
}

// listModes reports which practice modes the loaded bank supports.
// @Summary      List practice modes
// @Description  List all practice modes and whether the loaded bank has enough questions for each.
// @Tags         Bank
// @Produce      json
// @Success      200  {object}  ListModesResponse
// @Router       /modes [get]
func (h *Handler) listModes(w http.ResponseWriter, r *http.Request) {
	bank := h.svc.Bank()
	total := bank.TotalCount()

	hardCount := 0
	for _, cat := range bank.Categories() {
		hardCount += len(bank.QuestionsFor(cat, questionbank.DifficultyHard))
	}

	modes := []ModeInfo{
		modeInfo(quizsession.ModeSingleCategory, total > 0, "no questions loaded"),
		modeInfo(quizsession.ModeSingleDifficulty, total > 0, "no questions loaded"),
		modeInfo(quizsession.ModeBalancedMixed, total >= selection.BalancedMinimum,
			fmt.Sprintf("requires at least %d questions", selection.BalancedMinimum)),
		modeInfo(quizsession.ModeRandomSample, total > 0, "no questions loaded"),
		modeInfo(quizsession.ModeQuickSample, total >= selection.DefaultQuickSize,
			fmt.Sprintf("requires at least %d questions", selection.DefaultQuickSize)),
		modeInfo(quizsession.ModeHardOnly, hardCount > 0, "no hard questions loaded"),
	}

	respondJSON(w, http.StatusOK, ListModesResponse{Modes: modes})
}

func modeInfo(mode quizsession.Mode, available bool, reason string) ModeInfo {
	info := ModeInfo{Mode: string(mode), Available: available}
	if !available {
		info.Reason = reason
	}
	return info
}

func parseDifficulty(raw string) (questionbank.Difficulty, bool) {
	for _, d := range questionbank.Difficulties() {
		if string(d) == raw {
			return d, true
		}
	}
	return "", false
}
