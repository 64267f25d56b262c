package game

import (
	"testing"
	"time"

	"github.com/cbodonnell/tetris/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultScorer(highScore int) *Scorer {
	return NewScorer(scoreRules(config.Default()), highScore)
}

func TestScorer_RegisterClear(t *testing.T) {
	tests := []struct {
		lines int
		want  int
	}{
		{lines: 0, want: 0},
		{lines: 1, want: 100},
		{lines: 2, want: 300},
		{lines: 3, want: 500},
		{lines: 4, want: 800},
	}
	for _, tt := range tests {
		s := defaultScorer(0)
		points, err := s.RegisterClear(tt.lines)
		require.NoError(t, err)
		assert.Equal(t, tt.want, points)
		assert.Equal(t, tt.want, s.Score())
		assert.Equal(t, tt.lines, s.Lines())
	}
}

func TestScorer_RegisterClearInvalid(t *testing.T) {
	s := defaultScorer(0)
	for _, n := range []int{-1, 5} {
		_, err := s.RegisterClear(n)
		assert.ErrorIs(t, err, ErrInvalidClear)
	}
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Lines())
}

func TestScorer_Level(t *testing.T) {
	s := defaultScorer(0)
	assert.Equal(t, 1, s.Level())
	assert.Equal(t, 500*time.Millisecond, s.GravityInterval())

	// 9 lines stay on level 1
	for i := 0; i < 9; i++ {
		_, err := s.RegisterClear(1)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, s.Level())

	_, err := s.RegisterClear(1)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Lines())
	assert.Equal(t, 2, s.Level())
	assert.Equal(t, 450*time.Millisecond, s.GravityInterval())
}

func TestScorer_LevelOncePerEvent(t *testing.T) {
	rules := scoreRules(config.Default())
	rules.LinesPerLevel = 1
	s := NewScorer(rules, 0)

	_, err := s.RegisterClear(4)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Level())

	// zero-line events still let the level catch up
	_, err = s.RegisterClear(0)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Level())
}

func TestScorer_GravityFloor(t *testing.T) {
	s := defaultScorer(0)
	for i := 0; i < 130; i++ {
		_, err := s.RegisterClear(4)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, s.GravityInterval(), 50*time.Millisecond)
	}
	assert.GreaterOrEqual(t, s.Lines(), 500)
	assert.Equal(t, 50*time.Millisecond, s.GravityInterval())
}

func TestScorer_HighScore(t *testing.T) {
	s := defaultScorer(350)
	_, err := s.RegisterClear(2)
	require.NoError(t, err)
	assert.Equal(t, 350, s.HighScore())

	_, err = s.RegisterClear(1)
	require.NoError(t, err)
	assert.Equal(t, 400, s.Score())
	assert.Equal(t, 400, s.HighScore())

	s.ObserveHighScore(300)
	assert.Equal(t, 400, s.HighScore())
	s.ObserveHighScore(1000)
	assert.Equal(t, 1000, s.HighScore())
}

func TestScorer_ZeroLinesPerLevel(t *testing.T) {
	rules := scoreRules(config.Default())
	rules.LinesPerLevel = 0
	s := NewScorer(rules, 0)

	points, err := s.RegisterClear(1)
	require.NoError(t, err)
	assert.Equal(t, 100, points)
	assert.Equal(t, 1, s.Level())
}
