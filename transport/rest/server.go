package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type bot interface {
	MakeTurn(ctx context.Context, board *entity.Board) (*entity.SearchResult, error)
}

type referee interface {
	IsTerminal(board *entity.Board) bool
}

type handlers struct {
	logger *slog.Logger

	marks   entity.Marks
	referee referee
	bot     bot
}

// NewRouter - wires the routes of the move API.
func NewRouter(logger *slog.Logger, marks entity.Marks, referee referee, bot bot) http.Handler {
	h := &handlers{
		logger:  logger.With("component", "rest"),
		marks:   marks,
		referee: referee,
		bot:     bot,
	}

	r := chi.NewRouter()
	r.Get("/ping", h.ping)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/move", h.move)
	})

	return r
}

// Start - serves handler on port until ctx is canceled, then shuts down gracefully.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
