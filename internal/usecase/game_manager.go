package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type humanPlayer interface {
	ReadMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}

type display interface {
	ShowBoard(board *entity.Board) error
	ShowResult(outcome entity.Outcome) error
	ShowError(err error) error
}

type bot interface {
	MakeTurn(ctx context.Context, board *entity.Board) (*entity.SearchResult, error)
}

type referee interface {
	Outcome(board *entity.Board) (entity.Outcome, bool)
}

// PlayedMove is one committed move of a game.
type PlayedMove struct {
	Side entity.Side `json:"side"`
	Move entity.Move `json:"move"`
}

// GameSummary describes a finished game.
type GameSummary struct {
	ID      string         `json:"id"`
	Outcome entity.Outcome `json:"outcome"`
	Moves   []PlayedMove   `json:"moves"`
	Board   entity.Board   `json:"board"`
}

type GameManager struct {
	logger *slog.Logger

	marks   entity.Marks
	referee referee
	bot     bot
	human   humanPlayer
	display display
}

func NewGameManager(
	logger *slog.Logger,
	marks entity.Marks,
	referee referee,
	bot bot,
	human humanPlayer,
	display display,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game"),

		marks:   marks,
		referee: referee,
		bot:     bot,
		human:   human,
		display: display,
	}
}

// Play - runs one game from an empty board until it is won, lost or drawn.
func (that *GameManager) Play(ctx context.Context, first entity.Side) (*GameSummary, error) {
	if _, err := entity.ParseSide(string(first)); err != nil {
		return nil, fmt.Errorf("failed to start game: %w", err)
	}

	gameID := uuid.NewString()
	log := that.logger.With("method", "Play", "gameID", gameID)

	board := entity.NewBoard()
	summary := &GameSummary{
		ID:    gameID,
		Moves: make([]PlayedMove, 0, entity.CellCount),
	}

	log.Info("game started", "first", first)

	if err := that.display.ShowBoard(board); err != nil {
		return nil, fmt.Errorf("failed to show board: %w", err)
	}

	for side := first; ; side = side.Opponent() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		move, err := that.takeTurn(ctx, board, side)
		if err != nil {
			return nil, err
		}

		summary.Moves = append(summary.Moves, PlayedMove{Side: side, Move: move})
		log.Debug("move committed", "side", side, "move", move.String())

		if err = that.display.ShowBoard(board); err != nil {
			return nil, fmt.Errorf("failed to show board: %w", err)
		}

		outcome, finished := that.referee.Outcome(board)
		if !finished {
			continue
		}

		if err = that.display.ShowResult(outcome); err != nil {
			return nil, fmt.Errorf("failed to show result: %w", err)
		}

		summary.Outcome = outcome
		summary.Board = board.Snapshot()

		log.Info("game finished", "outcome", outcome, "moves", len(summary.Moves))

		return summary, nil
	}
}

func (that *GameManager) takeTurn(ctx context.Context, board *entity.Board, side entity.Side) (entity.Move, error) {
	if side == entity.SideComputer {
		return that.computerTurn(ctx, board)
	}

	return that.humanTurn(ctx, board)
}

func (that *GameManager) computerTurn(ctx context.Context, board *entity.Board) (entity.Move, error) {
	result, err := that.bot.MakeTurn(ctx, board)
	if err != nil {
		return entity.NoMove, fmt.Errorf("failed to make computer turn: %w", err)
	}

	if err = board.Place(result.Move, that.marks.Computer); err != nil {
		return entity.NoMove, fmt.Errorf("failed to place computer move %s: %w", result.Move, err)
	}

	return result.Move, nil
}

// humanTurn - asks until the player names an empty cell on the board.
func (that *GameManager) humanTurn(ctx context.Context, board *entity.Board) (entity.Move, error) {
	for {
		move, err := that.human.ReadMove(ctx, board)
		if err != nil {
			return entity.NoMove, fmt.Errorf("failed to read human move: %w", err)
		}

		err = board.Place(move, that.marks.Human)
		if err == nil {
			return move, nil
		}

		if !errors.Is(err, apperror.ErrInvalidCell) && !errors.Is(err, apperror.ErrCellOccupied) {
			return entity.NoMove, fmt.Errorf("failed to place human move %s: %w", move, err)
		}

		if err = that.display.ShowError(err); err != nil {
			return entity.NoMove, fmt.Errorf("failed to show error: %w", err)
		}

		if err = ctx.Err(); err != nil {
			return entity.NoMove, err
		}
	}
}
