// Package httpapi serves the quoting engine over JSON HTTP.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexanderramin/quoteforge/internal/config"
)

const shutdownTimeout = 10 * time.Second

// NewRouter mounts every route under /api/v1 plus /healthz.
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(securityHeaders)

	r.Get("/healthz", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/estimates", h.Estimate)
		r.Post("/analyze", h.Analyze)
		r.Get("/features", h.Features)

		r.Get("/projects", h.ListProjects)
		r.Post("/projects", h.CreateProject)
		r.Get("/projects/export", h.ExportProjects)
		r.Get("/projects/{id}", h.GetProject)
		r.Delete("/projects/{id}", h.DeleteProject)
		r.Patch("/projects/{id}/status", h.UpdateProjectStatus)
		r.Patch("/projects/{id}/notes", h.UpdateProjectNotes)
		r.Get("/projects/{id}/report", h.ProjectReport)

		r.Get("/pricing-config", h.GetPricingConfig)
		r.Put("/pricing-config", h.SavePricingConfig)
		r.Get("/pricing-config/history", h.PricingConfigHistory)
		r.Post("/pricing-config/activate", h.ActivatePricingConfig)
		r.Post("/pricing-config/simulate", h.SimulatePricingConfig)

		r.Get("/dashboard", h.Dashboard)
	})
	return r
}

// NewServer builds the HTTP server for cfg.
func NewServer(cfg config.Server, h *Handlers) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      NewRouter(h),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     slog.NewLogLogger(h.log.Handler(), slog.LevelError),
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server, log *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
