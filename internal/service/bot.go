package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
)

type BotService interface {
	MakeTurn(ctx context.Context, board *entity.Board) (*entity.SearchResult, error)
}

type searchEngine interface {
	Search(board *entity.Board) (entity.SearchResult, error)
	Marks() entity.Marks
}

type moveCache interface {
	Save(ctx context.Context, boardKey string, result *entity.SearchResult) error
	GetByKey(ctx context.Context, boardKey string) (*entity.SearchResult, error)
}

type botService struct {
	logger *slog.Logger

	engine        searchEngine
	cache         moveCache
	randomOpening bool
}

// NewBotService - cache may be nil. With randomOpening the first move on an empty board is a random cell.
func NewBotService(logger *slog.Logger, engine searchEngine, cache moveCache, randomOpening bool) BotService {
	return &botService{
		logger:        logger.With("component", "bot"),
		engine:        engine,
		cache:         cache,
		randomOpening: randomOpening,
	}
}

// MakeTurn - picks the computer's move for board without changing it.
func (that *botService) MakeTurn(ctx context.Context, board *entity.Board) (*entity.SearchResult, error) {
	log := that.logger.With("method", "MakeTurn")

	if board.IsFull() {
		return nil, apperror.ErrNoAvailableMoves
	}

	if that.randomOpening && board.IsEmpty() {
		cell := rand.Intn(entity.CellCount) //nolint: gosec // it's ok
		move := entity.Move{Row: cell / entity.BoardSize, Col: cell % entity.BoardSize}

		log.Debug("random opening", "move", move.String())

		return &entity.SearchResult{Move: move}, nil
	}

	key := board.Key(that.engine.Marks())

	if cached := that.fromCache(ctx, key, board); cached != nil {
		log.Debug("cache hit", "key", key, "move", cached.Move.String(), "score", cached.Score)
		return cached, nil
	}

	result, err := that.engine.Search(board)
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	log.Debug("searched", "key", key, "move", result.Move.String(), "score", result.Score, "nodes", result.Nodes)

	if that.cache != nil {
		if err = that.cache.Save(ctx, key, &result); err != nil {
			log.Warn("failed to cache move", "key", key, "error", err)
		}
	}

	return &result, nil
}

func (that *botService) fromCache(ctx context.Context, key string, board *entity.Board) *entity.SearchResult {
	if that.cache == nil {
		return nil
	}

	log := that.logger.With("method", "fromCache", "key", key)

	cached, err := that.cache.GetByKey(ctx, key)
	if errors.Is(err, repository.ErrMoveNotFound) {
		return nil
	}

	if err != nil {
		log.Warn("failed to read cached move", "error", err)
		return nil
	}

	if mark, err := board.Get(cached.Move.Row, cached.Move.Col); err != nil || mark != entity.EmptyCell {
		log.Warn("ignoring unplayable cached move", "move", cached.Move.String())
		return nil
	}

	return cached
}
