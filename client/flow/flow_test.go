package flow

import (
	"testing"

	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestModeForPhase(t *testing.T) {
	tests := []struct {
		phase types.Phase
		want  GameMode
	}{
		{phase: types.PhaseNotStarted, want: GameModeMenu},
		{phase: types.PhasePlaying, want: GameModePlay},
		{phase: types.PhasePaused, want: GameModePlay},
		{phase: types.PhaseGameOver, want: GameModePlay},
	}
	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, ModeForPhase(tt.phase))
		})
	}
}
