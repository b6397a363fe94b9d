package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrInvalidMarks     = errors.New("invalid player marks")
	ErrUnknownSide      = errors.New("unknown side")
)
