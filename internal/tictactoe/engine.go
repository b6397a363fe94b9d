package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	WinScore  = 10
	DrawScore = 0

	// Infinity lies outside every reachable score.
	Infinity = 1000
)

// Engine picks the computer's move with minimax and alpha-beta pruning.
// It holds no per-search state, so one Engine can serve concurrent searches on distinct boards.
type Engine struct {
	marks     entity.Marks
	evaluator *Evaluator
}

func NewEngine(marks entity.Marks) *Engine {
	return &Engine{
		marks:     marks,
		evaluator: NewEvaluator(marks),
	}
}

func (that *Engine) Marks() entity.Marks {
	return that.marks
}

func (that *Engine) Evaluator() *Evaluator {
	return that.evaluator
}

// Score - the undiscounted value of a board from the computer's side.
func (that *Engine) Score(board *entity.Board) int {
	switch that.evaluator.EvaluateWinner(board) {
	case entity.ResultComputerWins:
		return WinScore
	case entity.ResultHumanWins:
		return -WinScore
	default:
		return DrawScore
	}
}

// FindBestMove - returns the computer's optimal move.
// The board must have an empty cell; otherwise apperror.ErrNoAvailableMoves is returned with entity.NoMove.
func (that *Engine) FindBestMove(board *entity.Board) (entity.Move, error) {
	result, err := that.Search(board)
	if err != nil {
		return entity.NoMove, err
	}

	return result.Move, nil
}

// Search - like FindBestMove, but also reports the move's score and the number of visited positions.
func (that *Engine) Search(board *entity.Board) (entity.SearchResult, error) {
	moves := AvailableMoves(board)
	if len(moves) == 0 {
		return entity.SearchResult{Move: entity.NoMove}, apperror.ErrNoAvailableMoves
	}

	s := &search{engine: that, board: board}
	best := entity.SearchResult{Move: entity.NoMove, Score: -Infinity}

	for _, move := range moves {
		score := s.rootScore(move)

		// strictly greater: ties keep the earlier move in row-major order
		if score > best.Score {
			best.Move = move
			best.Score = score
		}
	}

	best.Nodes = s.nodes

	return best, nil
}

// Analyze - scores every available move, in row-major order.
func (that *Engine) Analyze(board *entity.Board) ([]entity.ScoredMove, error) {
	moves := AvailableMoves(board)
	if len(moves) == 0 {
		return nil, apperror.ErrNoAvailableMoves
	}

	s := &search{engine: that, board: board}
	scored := make([]entity.ScoredMove, 0, len(moves))

	for _, move := range moves {
		scored = append(scored, entity.ScoredMove{Move: move, Score: s.rootScore(move)})
	}

	return scored, nil
}

// search is the state of a single FindBestMove call.
type search struct {
	engine *Engine
	board  *entity.Board
	nodes  int
}

// rootScore - the computer has just played move, so the next ply minimizes.
func (that *search) rootScore(move entity.Move) int {
	return that.withMove(move, that.engine.marks.Computer, func() int {
		return that.minimax(0, false, -Infinity, Infinity)
	})
}

func (that *search) minimax(depth int, isMaximizing bool, alpha, beta int) int {
	that.nodes++

	// prefer quick wins and slow losses
	switch that.engine.evaluator.EvaluateWinner(that.board) {
	case entity.ResultComputerWins:
		return WinScore - depth
	case entity.ResultHumanWins:
		return -WinScore + depth
	}

	moves := AvailableMoves(that.board)
	if len(moves) == 0 {
		return DrawScore
	}

	if isMaximizing {
		best := -Infinity
		for _, move := range moves {
			score := that.withMove(move, that.engine.marks.Computer, func() int {
				return that.minimax(depth+1, false, alpha, beta)
			})

			best = max(best, score)
			alpha = max(alpha, best)
			if beta <= alpha {
				break
			}
		}

		return best
	}

	best := Infinity
	for _, move := range moves {
		score := that.withMove(move, that.engine.marks.Human, func() int {
			return that.minimax(depth+1, true, alpha, beta)
		})

		best = min(best, score)
		beta = min(beta, best)
		if beta <= alpha {
			break
		}
	}

	return best
}

// withMove - plays move for the duration of fn; the cell is restored on every exit path.
func (that *search) withMove(move entity.Move, mark entity.Mark, fn func() int) int {
	previous := that.board[move.Row][move.Col]
	that.board[move.Row][move.Col] = mark

	defer func() {
		that.board[move.Row][move.Col] = previous
	}()

	return fn()
}
