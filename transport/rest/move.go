package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const maxBodyBytes = 4 << 10

var errBadBoard = errors.New("bad board")

type moveRequest struct {
	Board [][]string `json:"board"`
}

type moveResponse struct {
	Row   int `json:"row"`
	Col   int `json:"col"`
	Score int `json:"score"`
	Nodes int `json:"nodes"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// move - answers with the computer's move for the posted board.
func (that *handlers) move(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "move")

	var req moveRequest

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid json: %v", err)})
		return
	}

	board, err := that.toBoard(req.Board)
	if err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if that.referee.IsTerminal(board) {
		that.writeJSON(w, http.StatusConflict, errorResponse{Error: apperror.ErrGameFinished.Error()})
		return
	}

	result, err := that.bot.MakeTurn(r.Context(), board)
	if err != nil {
		log.Error("failed to make turn", "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	that.writeJSON(w, http.StatusOK, moveResponse{
		Row:   result.Move.Row,
		Col:   result.Move.Col,
		Score: result.Score,
		Nodes: result.Nodes,
	})
}

func (that *handlers) toBoard(rows [][]string) (*entity.Board, error) {
	if len(rows) != entity.BoardSize {
		return nil, fmt.Errorf("%w: want %d rows, got %d", errBadBoard, entity.BoardSize, len(rows))
	}

	board := entity.NewBoard()

	for row, cells := range rows {
		if len(cells) != entity.BoardSize {
			return nil, fmt.Errorf("%w: row %d has %d cells", errBadBoard, row, len(cells))
		}

		for col, cell := range cells {
			mark := entity.Mark(cell)
			if mark != entity.EmptyCell && mark != that.marks.Computer && mark != that.marks.Human {
				return nil, fmt.Errorf("%w: unknown mark %q at (%d,%d)", errBadBoard, cell, row, col)
			}

			board[row][col] = mark
		}
	}

	return board, nil
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
