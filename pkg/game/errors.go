package game

import "errors"

var (
	// ErrNegativeElapsed is returned by Tick for a negative elapsed time.
	ErrNegativeElapsed = errors.New("elapsed time cannot be negative")
	// ErrInvalidCommand is returned for commands a game instance does not handle.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrInvalidClear is returned when a clear event has no score table entry.
	ErrInvalidClear = errors.New("invalid clear")
	// ErrAlreadyStarted is returned by Start on a game that has left NotStarted.
	ErrAlreadyStarted = errors.New("game already started")
	// ErrQuit is returned by the frame loop once a quit command was processed.
	ErrQuit = errors.New("quit requested")
)
