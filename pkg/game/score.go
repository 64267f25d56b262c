package game

import (
	"fmt"
	"time"
)

// ScoreRules are the scoring and speed parameters of a game.
type ScoreRules struct {
	// Table is indexed by the number of rows cleared in one event
	Table         []int
	LinesPerLevel int
	StartLevel    int
	BaseInterval  time.Duration
	Step          time.Duration
	MinInterval   time.Duration
}

// Scorer accumulates score, cleared lines and level for one game and keeps
// the high score across games.
type Scorer struct {
	rules     ScoreRules
	score     int
	highScore int
	lines     int
	level     int
}

// NewScorer creates a scorer at the start level with the given high score.
func NewScorer(rules ScoreRules, highScore int) *Scorer {
	return &Scorer{
		rules:     rules,
		highScore: highScore,
		level:     rules.StartLevel,
	}
}

// RegisterClear records one clear event of n rows. A single event advances
// the level by at most one, even when n crosses several thresholds.
// It returns the points awarded.
func (s *Scorer) RegisterClear(n int) (int, error) {
	if n < 0 || n >= len(s.rules.Table) {
		return 0, fmt.Errorf("%w: cannot score %d lines in one event", ErrInvalidClear, n)
	}

	points := s.rules.Table[n]
	s.score += points
	s.highScore = max(s.highScore, s.score)
	s.lines += n
	if s.rules.LinesPerLevel > 0 && s.lines/s.rules.LinesPerLevel >= s.level {
		s.level++
	}

	return points, nil
}

// GravityInterval returns the time between automatic one-row drops at the
// current level.
func (s *Scorer) GravityInterval() time.Duration {
	interval := s.rules.BaseInterval - time.Duration(s.level-1)*s.rules.Step
	return max(interval, s.rules.MinInterval)
}

// ObserveHighScore raises the high score to at least highScore.
func (s *Scorer) ObserveHighScore(highScore int) {
	s.highScore = max(s.highScore, highScore)
}

func (s *Scorer) Score() int {
	return s.score
}

func (s *Scorer) HighScore() int {
	return s.highScore
}

func (s *Scorer) Lines() int {
	return s.lines
}

func (s *Scorer) Level() int {
	return s.level
}
