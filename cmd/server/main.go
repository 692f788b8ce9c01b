package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/recall/internal/api"
	"github.com/remaimber-it/recall/internal/domain/review"
	"github.com/remaimber-it/recall/internal/infrastructure/config"
	"github.com/remaimber-it/recall/internal/infrastructure/logging"
	"github.com/remaimber-it/recall/internal/service"
	"github.com/remaimber-it/recall/internal/store"

	_ "github.com/remaimber-it/recall/docs" // generated swagger docs
)

// @title           Recall API
// @version         1.0
// @description     Flashcard review over a plain text deck: save the deck, then reveal and rate cards until every card is mastered.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.IsDev())
	slog.SetDefault(logger)

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err, "path", cfg.DBPath)
		os.Exit(1)
	}
	defer db.Close()

	drill := service.NewDrillService(db, cfg.SlotKey, review.Config{Seed: cfg.ShuffleSeed}, logger)
	if err := drill.Load(context.Background()); err != nil {
		logger.Error("failed to load deck", "error", err)
		os.Exit(1)
	}
	handler := api.NewHandler(drill, logger)

	// ── Middleware chain: RequestID → Recoverer → Logging → CORS → mux ──
	root := api.NewServerHandler(newMux(handler), logger, cfg.CORSAllowedOrigins)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           root,
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

	logger.Info("starting server", "address", cfg.ServerAddress, "db", cfg.DBPath, "slot", cfg.SlotKey)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// newMux registers the API routes and the Swagger UI.
func newMux(handler *api.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	return mux
}
