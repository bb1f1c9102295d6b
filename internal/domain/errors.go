package domain

import "errors"

var (
	// ErrBankNotFound indicates the question bank could not be loaded.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrInvalidBank is returned for banks with malformed questions.
	ErrInvalidBank = errors.New("invalid question bank")
	// ErrGameNotFound is returned when a game session is unknown.
	ErrGameNotFound = errors.New("game not found")
	// ErrGameClosed is returned when acting on an unmounted game.
	ErrGameClosed = errors.New("game closed")
	// ErrOptionNotFound indicates a submitted option is not on screen.
	ErrOptionNotFound = errors.New("option not found")
)
