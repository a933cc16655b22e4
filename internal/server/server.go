// Package server mounts the HTTP API and runs the listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/daybookhq/daybook/internal/handler"
	"github.com/daybookhq/daybook/internal/handler/chat"
	"github.com/daybookhq/daybook/internal/handler/exercises"
	"github.com/daybookhq/daybook/internal/handler/goals"
	"github.com/daybookhq/daybook/internal/handler/summaries"
	"github.com/daybookhq/daybook/internal/handler/watch"
	"github.com/daybookhq/daybook/internal/logging"
	"github.com/daybookhq/daybook/internal/svc"
)

// Options holds the optional server settings.
type Options struct {
	Quiet bool // suppress request logging and startup output
}

// Run starts the API server and blocks until the context is cancelled
// or the listener fails.
func Run(ctx context.Context, svcCtx *svc.ServiceContext, opts ...Options) error {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	port := svcCtx.Config.Server.Port
	if err := checkPortAvailable(port); err != nil {
		return fmt.Errorf("port %d is already in use", port)
	}
	if !o.Quiet {
		fmt.Printf("Starting server on http://localhost:%d\n", port)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("localhost:%d", port),
		Handler: Router(svcCtx, o),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logging.Warnf("server shutdown: %v", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Router builds the chi router with all API routes mounted.
func Router(svcCtx *svc.ServiceContext, opts ...Options) http.Handler {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}

	r := chi.NewRouter()
	if !o.Quiet {
		r.Use(chimw.Logger)
	}
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	r.Get("/health", handler.HealthCheckHandler(svcCtx))

	r.Route("/api/v1", func(r chi.Router) {
		// Chat
		r.Post("/chat/turns", chat.SendTurnHandler(svcCtx))
		r.Get("/chat/days", chat.ListDaysHandler(svcCtx))
		r.Get("/chat/days/{date}", chat.GetHistoryByDayHandler(svcCtx))
		r.Put("/chat/days/{date}/mood", chat.SetMoodHandler(svcCtx))

		// Goals and suggestions
		r.Post("/goals", goals.AddGoalHandler(svcCtx))
		r.Get("/goals/{date}", goals.ListGoalsHandler(svcCtx))
		r.Put("/goals/{date}/{id}", goals.ToggleGoalHandler(svcCtx))
		r.Delete("/goals/{date}/{id}", goals.DeleteGoalHandler(svcCtx))
		r.Get("/suggestions/{date}", goals.ListSuggestionsHandler(svcCtx))

		// Daily summaries
		r.Get("/summaries", summaries.ListRecentHandler(svcCtx))
		r.Get("/summaries/{date}", summaries.GetSummaryHandler(svcCtx))
		r.Post("/summaries/{date}", summaries.RegenerateHandler(svcCtx))

		// Exercise catalog
		r.Get("/exercises", exercises.ListExercisesHandler(svcCtx))
		r.Get("/exercises/{id}", exercises.GetExerciseHandler(svcCtx))
	})

	// Live change feed
	r.Get("/api/watch", watch.Handler(svcCtx))

	return r
}

func checkPortAvailable(port int) error {
	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return err
	}
	return ln.Close()
}
