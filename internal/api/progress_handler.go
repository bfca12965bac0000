// internal/api/progress_handler.go
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/progress"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
)

// ── Request / Response types ────────────────────────────────────────────────

type CategoryScoreView struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

type SummaryView struct {
	SessionID       string                       `json:"session_id"`
	Mode            string                       `json:"mode"`
	ExamNumber      int                          `json:"exam_number,omitempty"`
	Score           int                          `json:"score"`
	Total           int                          `json:"total"`
	ScoreFraction   float64                      `json:"score_fraction"`
	DurationSeconds float64                      `json:"duration_seconds"`
	CompletedAt     string                       `json:"completed_at"`
	PerCategory     map[string]CategoryScoreView `json:"per_category"`
}

type RecordView struct {
	Attempt         int                          `json:"attempt"`
	Mode            string                       `json:"mode"`
	Score           int                          `json:"score"`
	Total           int                          `json:"total"`
	ScoreFraction   float64                      `json:"score_fraction"`
	DurationSeconds float64                      `json:"duration_seconds"`
	Date            string                       `json:"date"`
	PerCategory     map[string]CategoryScoreView `json:"per_category"`
}

type HistoryResponse struct {
	Attempts []RecordView `json:"attempts"`
}

type CategoryAccuracyView struct {
	Answered int     `json:"answered"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

type StatsResponse struct {
	AttemptCount           int                             `json:"attempt_count"`
	AverageScore           float64                         `json:"average_score"`
	AverageDurationSeconds float64                         `json:"average_duration_seconds"`
	PerCategory            map[string]CategoryAccuracyView `json:"per_category"`
}

func categoryScoreViews(scores map[string]quizsession.CategoryScore) map[string]CategoryScoreView {
	views := make(map[string]CategoryScoreView, len(scores))
	for cat, s := range scores {
		views[cat] = CategoryScoreView{Correct: s.Correct, Total: s.Total}
	}
	return views
}

func summaryView(sum quizsession.Summary) SummaryView {
	return SummaryView{
		SessionID:       sum.SessionID,
		Mode:            string(sum.Mode),
		ExamNumber:      sum.ExamNumber,
		Score:           sum.Score,
		Total:           sum.Total,
		ScoreFraction:   sum.Fraction,
		DurationSeconds: sum.Duration.Seconds(),
		CompletedAt:     sum.CompletedAt.UTC().Format(time.RFC3339),
		PerCategory:     categoryScoreViews(sum.PerCategory),
	}
}

func recordView(rec progress.Record) RecordView {
	return RecordView{
		Attempt:         rec.Attempt,
		Mode:            string(rec.Mode),
		Score:           rec.Score,
		Total:           rec.Total,
		ScoreFraction:   rec.ScoreFraction,
		DurationSeconds: rec.Duration.Seconds(),
		Date:            rec.Date,
		PerCategory:     categoryScoreViews(rec.PerCategory),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats returns aggregate progress statistics.
// @Summary      Get progress statistics
// @Description  Aggregate statistics over all recorded attempts. With no attempts, counts and averages are zero.
// @Tags         Progress
// @Produce      json
// @Param        X-User-ID  header  string  false  "User identity, defaults to local"
// @Success      200  {object}  StatsResponse
// @Router       /progress [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Aggregate(userID(r))
	if h.handleServiceError(w, err) {
		return
	}

	resp := StatsResponse{
		AttemptCount:           stats.AttemptCount,
		AverageScore:           stats.AverageScore,
		AverageDurationSeconds: stats.AverageDuration.Seconds(),
		PerCategory:            make(map[string]CategoryAccuracyView, len(stats.PerCategory)),
	}
	for cat, acc := range stats.PerCategory {
		resp.PerCategory[cat] = CategoryAccuracyView{
			Answered: acc.Answered,
			Correct:  acc.Correct,
			Accuracy: acc.Accuracy,
		}
	}

	respondJSON(w, http.StatusOK, resp)
}

// getHistory lists all recorded attempts, oldest first.
// @Summary      List attempt history
// @Tags         Progress
// @Produce      json
// @Param        X-User-ID  header  string  false  "User identity, defaults to local"
// @Success      200  {object}  HistoryResponse
// @Router       /progress/history [get]
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.History(userID(r))
	if h.handleServiceError(w, err) {
		return
	}

	resp := HistoryResponse{Attempts: make([]RecordView, 0, len(records))}
	for _, rec := range records {
		resp.Attempts = append(resp.Attempts, recordView(rec))
	}

	respondJSON(w, http.StatusOK, resp)
}

// exportProgress downloads the attempt history as a JSON file.
// @Summary      Export progress
// @Description  Download the full attempt history as a JSON attachment.
// @Tags         Progress
// @Produce      json
// @Param        X-User-ID  header  string  false  "User identity, defaults to local"
// @Success      200  {object}  HistoryResponse
// @Router       /progress/export [get]
func (h *Handler) exportProgress(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.History(userID(r))
	if h.handleServiceError(w, err) {
		return
	}

	resp := HistoryResponse{Attempts: make([]RecordView, 0, len(records))}
	for _, rec := range records {
		resp.Attempts = append(resp.Attempts, recordView(rec))
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=progress-export.json")
	json.NewEncoder(w).Encode(resp)
}

// resetProgress clears all recorded attempts for the user.
// @Summary      Reset progress
// @Description  Delete every recorded attempt for the user. Other users are unaffected.
// @Tags         Progress
// @Param        X-User-ID  header  string  false  "User identity, defaults to local"
// @Success      204  "cleared"
// @Router       /progress [delete]
func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetProgress(userID(r)); h.handleServiceError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
