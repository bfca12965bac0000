package main

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gflobe5510/CFA-App-3.0/internal/api"
	"github.com/gflobe5510/CFA-App-3.0/internal/domain/questionbank"
	"github.com/gflobe5510/CFA-App-3.0/internal/domain/selection"
	"github.com/gflobe5510/CFA-App-3.0/internal/infrastructure/config"
	"github.com/gflobe5510/CFA-App-3.0/internal/service"
	"github.com/gflobe5510/CFA-App-3.0/internal/store"

	_ "github.com/gflobe5510/CFA-App-3.0/docs" // generated swagger docs
)

// @title           CFA Exam Prep API
// @version         1.0
// @description     CFA Level I exam preparation — practice quizzes, mock exams, and progress tracking.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	bank, err := questionbank.LoadFile(cfg.QuestionBankPath)
	if err != nil {
		// The server still comes up with an empty bank: pickers render
		// zero counts and every mode reports unavailable.
		logger.Error("failed to load question bank", "path", cfg.QuestionBankPath, "error", err)
		bank, _ = questionbank.Build(nil)
	} else {
		logger.Info("question bank loaded", "path", cfg.QuestionBankPath, "questions", bank.TotalCount())
	}

	progressStore, err := openProgressStore(cfg)
	if err != nil {
		logger.Error("failed to open progress store", "backend", cfg.ProgressBackend, "error", err)
		os.Exit(1)
	}
	defer progressStore.Close()

	policy := selection.Policy{ShuffleCategoryPractice: cfg.ShuffleCategoryPractice}
	selector := selection.New(bank, rand.New(rand.NewSource(time.Now().UnixNano())), policy)

	quizSvc := service.New(bank, selector, progressStore, logger)
	handler := api.NewHandler(quizSvc, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(cors.AllowAll().Handler(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

func openProgressStore(cfg *config.Config) (store.ProgressStore, error) {
	if cfg.ProgressBackend == config.ProgressBackendJSONFile {
		return store.NewJSONFile(cfg.ProgressPath)
	}
	return store.NewSQLite(cfg.ProgressPath)
}
