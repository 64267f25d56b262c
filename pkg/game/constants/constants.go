package constants

import "time"

const (
	// BoardWidth is the number of columns on a standard board
	BoardWidth int = 10
	// BoardHeight is the number of rows on a standard board
	BoardHeight int = 20

	// GravityBaseInterval is the gravity interval at level 1
	GravityBaseInterval time.Duration = 500 * time.Millisecond
	// GravityStep is how much faster gravity gets per level
	GravityStep time.Duration = 50 * time.Millisecond
	// GravityMinInterval is the fastest gravity interval
	GravityMinInterval time.Duration = 50 * time.Millisecond

	// LinesPerLevel is the number of cleared lines needed to advance a level
	LinesPerLevel int = 10
	// StartLevel is the level a new game begins at
	StartLevel int = 1

	// FrameInterval is the frame length of headless frame loops (~60 FPS)
	FrameInterval time.Duration = 16 * time.Millisecond
)

// ScoreTable maps the number of rows cleared in one event to points.
// Single, double, triple, tetris.
var ScoreTable = [5]int{0, 100, 300, 500, 800}
