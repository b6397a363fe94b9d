package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/console"
	"github.com/rocketscienceinc/tictactoe-minimax/transport/rest"
)

var ErrUnknownMode = errors.New("unknown mode")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	marks, err := conf.Game.Marks()
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	var moveRepo repository.MoveRepository

	if conf.Redis.Enabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveRepo = repository.NewMoveRepository(redisStorage.Connection, conf.Redis.TTL)
	}

	engine := tictactoe.NewEngine(marks)
	bot := service.NewBotService(logger, engine, moveRepo, conf.Game.RandomOpening)

	switch conf.Mode {
	case config.ModeConsole:
		return runConsole(ctx, logger, conf, engine, bot)
	case config.ModeServer:
		return runServer(ctx, logger, conf, engine, bot)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runConsole(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	engine *tictactoe.Engine,
	bot service.BotService,
) error {
	log := logger.With("component", "app", "mode", config.ModeConsole)

	term := console.New(os.Stdin, os.Stdout, engine.Marks(), conf.Game.ClearScreen)
	manager := usecase.NewGameManager(logger, engine.Marks(), engine.Evaluator(), bot, term, term)

	// reading stdin cannot be interrupted, so the game runs aside and a signal abandons it
	doneCh := make(chan error, 1)
	go func() {
		first, err := firstSide(conf, term)
		if err != nil {
			doneCh <- err
			return
		}

		summary, err := manager.Play(ctx, first)
		if err != nil {
			doneCh <- fmt.Errorf("game failed: %w", err)
			return
		}

		log.Info("game over", "gameID", summary.ID, "outcome", summary.Outcome, "moves", len(summary.Moves))
		doneCh <- nil
	}()

	select {
	case err := <-doneCh:
		return err
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func firstSide(conf *config.Config, term *console.Console) (entity.Side, error) {
	side, fixed, err := conf.Game.FixedFirstTurn()
	if err != nil {
		return "", fmt.Errorf("invalid game config: %w", err)
	}

	if fixed {
		return side, nil
	}

	side, err = term.ChooseFirst()
	if err != nil {
		return "", fmt.Errorf("failed to choose first turn: %w", err)
	}

	return side, nil
}

func runServer(
	ctx context.Context,
	logger *slog.Logger,
	conf *config.Config,
	engine *tictactoe.Engine,
	bot service.BotService,
) error {
	log := logger.With("component", "app", "mode", config.ModeServer)

	router := rest.NewRouter(logger, engine.Marks(), engine.Evaluator(), bot)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err := rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}
