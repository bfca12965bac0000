// internal/api/session_handler.go
package api

import (
	"net/http"

	"github.com/gflobe5510/CFA-App-3.0/internal/domain/category"
	"github.com/gflobe5510/CFA-App-3.0/internal/domain/questionbank"
	quizsession "github.com/gflobe5510/CFA-App-3.0/internal/domain/quiz_session"
	"github.com/gflobe5510/CFA-App-3.0/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartSessionRequest struct {
	Mode       string `json:"mode"`
	Category   string `json:"category,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	ExamNumber int    `json:"exam_number,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	Size       int    `json:"size,omitempty"`
}

type SessionResponse struct {
	SessionID  string       `json:"session_id"`
	Mode       string       `json:"mode"`
	ExamNumber int          `json:"exam_number,omitempty"`
	State      string       `json:"state"`
	Index      int          `json:"index"`
	Total      int          `json:"total"`
	Question   QuestionView `json:"question"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type SubmitAnswerResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation,omitempty"`
}

type AdvanceResponse struct {
	Done     bool          `json:"done"`
	Question *QuestionView `json:"question,omitempty"`
	Index    int           `json:"index,omitempty"`
	Total    int           `json:"total,omitempty"`
	Summary  *SummaryView  `json:"summary,omitempty"`
	Record   *RecordView   `json:"record,omitempty"`
	Warning  string        `json:"warning,omitempty"`
}

func sessionResponse(sess *quizsession.Session) (SessionResponse, error) {
	q, pos, err := sess.Current()
	if err != nil {
		return SessionResponse{}, err
	}
	return SessionResponse{
		SessionID:  sess.ID,
		Mode:       string(sess.Mode),
		ExamNumber: sess.ExamNumber,
		State:      string(sess.State()),
		Index:      pos.Index,
		Total:      pos.Total,
		Question:   questionView(q),
	}, nil
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startSession begins a new attempt, replacing any active one.
// @Summary      Start a quiz session
// @Description  Start a new attempt with the chosen mode. An active session for the same user is discarded without recording a score.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string               false  "User identity, defaults to local"
// @Param        body       body    StartSessionRequest  true   "Mode and its parameters"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  map[string]string  "unknown mode or difficulty"
// @Failure      422  {object}  map[string]string  "not enough questions for the mode"
// @Router       /sessions [post]
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	svcReq := service.StartRequest{
		Mode:       quizsession.Mode(req.Mode),
		Category:   category.Resolve(req.Category),
		ExamNumber: req.ExamNumber,
		Limit:      req.Limit,
		Size:       req.Size,
	}
	if req.Difficulty != "" {
		d, ok := parseDifficulty(req.Difficulty)
		if !ok {
			respondError(w, http.StatusBadRequest, "unknown difficulty: "+req.Difficulty)
			return
		}
		svcReq.Difficulty = d
	} else if svcReq.Mode == quizsession.ModeSingleDifficulty {
		svcReq.Difficulty = questionbank.DifficultyMedium
	}

	sess, err := h.svc.StartSession(userID(r), svcReq)
	if h.handleServiceError(w, err) {
		return
	}

	resp, err := sessionResponse(sess)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusCreated, resp)
}

// getSession returns the current question of the active attempt.
// @Summary      Get the active session
// @Description  Return the active attempt's current question and position.
// @Tags         Sessions
// @Produce      json
// @Param        X-User-ID  header  string  false  "User identity, defaults to local"
// @Success      200  {object}  SessionResponse
// @Failure      404  {object}  map[string]string  "no active session"
// @Router       /sessions/current [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := h.svc.Session(userID(r))
	if h.handleServiceError(w, err) {
		return
	}

	resp, err := sessionResponse(sess)
	if h.handleServiceError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// submitAnswer grades the current question.
// @Summary      Submit an answer
// @Description  Submit an answer for the current question. Repeated submissions for the same question are rejected.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header  string               false  "User identity, defaults to local"
// @Param        body       body    SubmitAnswerRequest  true   "Selected option"
// @Success      200  {object}  SubmitAnswerResponse
// @Failure      404  {object}  map[string]string  "no active session"
// @Failure      409  {object}  map[string]string  "already submitted"
// @Router       /sessions/current/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req SubmitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.SubmitAnswer(userID(r), req.Answer)
	if h.handleServiceError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, SubmitAnswerResponse{
		Correct:       result.Correct,
		CorrectAnswer: result.CorrectAnswer,
		Explanation:   result.Explanation,
	})
}

// advanceSession moves past the current question.
// @Summary      Advance the session
// @Description  Move to the next question, or finish the attempt after the last one. Finishing records the attempt in progress history.
// @Tags         Sessions
// @Produce      json
// @Param        X-User-ID  header  string  false  "User identity, defaults to local"
// @Success      200  {object}  AdvanceResponse
// @Failure      404  {object}  map[string]string  "no active session"
// @Failure      409  {object}  map[string]string  "current question not answered"
// @Router       /sessions/current/advance [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	user := userID(r)
	result, err := h.svc.Advance(user)
	if h.handleServiceError(w, err) {
		return
	}

	if result.Done {
		resp := AdvanceResponse{Done: true}
		if result.Summary != nil {
			sv := summaryView(*result.Summary)
			resp.Summary = &sv
		}
		if result.Record != nil {
			rv := recordView(*result.Record)
			resp.Record = &rv
		}
		if result.Warning != nil {
			resp.Warning = result.Warning.Error()
		}
		respondJSON(w, http.StatusOK, resp)
		return
	}

	sess, err := h.svc.Session(user)
	if h.handleServiceError(w, err) {
		return
	}
	q, pos, err := sess.Current()
	if h.handleServiceError(w, err) {
		return
	}

	view := questionView(q)
	respondJSON(w, http.StatusOK, AdvanceResponse{
		Done:     false,
		Question: &view,
		Index:    pos.Index,
		Total:    pos.Total,
	})
}

// abandonSession discards the active attempt.
// @Summary      Abandon the session
// @Description  Discard the active attempt without recording a score.
// @Tags         Sessions
// @Param        X-User-ID  header  string  false  "User identity, defaults to local"
// @Success      204  "abandoned"
// @Failure      404  {object}  map[string]string  "no active session"
// @Router       /sessions/current [delete]
func (h *Handler) abandonSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Abandon(userID(r)); h.handleServiceError(w, err) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
