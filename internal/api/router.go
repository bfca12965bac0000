// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches every API route to the mux. Routing relies on the
// method-pattern syntax of net/http.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Question bank
	mux.HandleFunc("GET /categories", h.listCategories)
	mux.HandleFunc("GET /categories/{category}/questions", h.listQuestions)
	mux.HandleFunc("GET /modes", h.listModes)

	// Sessions (one active attempt per user)
	mux.HandleFunc("POST /sessions", h.startSession)
	mux.HandleFunc("GET /sessions/current", h.getSession)
	mux.HandleFunc("POST /sessions/current/answers", h.submitAnswer)
	mux.HandleFunc("POST /sessions/current/advance", h.advanceSession)
	mux.HandleFunc("DELETE /sessions/current", h.abandonSession)

	// Progress
	mux.HandleFunc("GET /progress", h.getStats)
	mux.HandleFunc("GET /progress/history", h.getHistory)
	mux.HandleFunc("GET /progress/export", h.exportProgress)
	mux.HandleFunc("DELETE /progress", h.resetProgress)
}
