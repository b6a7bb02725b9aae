package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrColumnFull       = errors.New("column is full")
	ErrColumnOutOfRange = errors.New("column is out of range")
	ErrInvalidColumn    = errors.New("invalid column number")
	ErrInputClosed      = errors.New("input is closed")
)
