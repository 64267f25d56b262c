package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 500*time.Millisecond, cfg.Gravity.Base)
	assert.Equal(t, 50*time.Millisecond, cfg.Gravity.Step)
	assert.Equal(t, 50*time.Millisecond, cfg.Gravity.Min)
	assert.Equal(t, []int{0, 100, 300, 500, 800}, cfg.Scoring.Table)
	assert.Equal(t, 10, cfg.Scoring.LinesPerLevel)
	assert.Equal(t, 1, cfg.Scoring.StartLevel)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name: "empty file keeps defaults",
			data: "",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name: "partial override",
			data: `
board:
  width: 12
gravity:
  base: 800ms
seed: 42
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 12, cfg.Board.Width)
				assert.Equal(t, 20, cfg.Board.Height)
				assert.Equal(t, 800*time.Millisecond, cfg.Gravity.Base)
				assert.Equal(t, 50*time.Millisecond, cfg.Gravity.Min)
				assert.Equal(t, uint64(42), cfg.Seed)
			},
		},
		{
			name: "custom score table",
			data: `
scoring:
  table: [0, 40, 100, 300, 1200]
  linesPerLevel: 5
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []int{0, 40, 100, 300, 1200}, cfg.Scoring.Table)
				assert.Equal(t, 5, cfg.Scoring.LinesPerLevel)
			},
		},
		{
			name:    "short score table",
			data:    "scoring:\n  table: [0, 100]\n",
			wantErr: true,
		},
		{
			name:    "decreasing score table",
			data:    "scoring:\n  table: [0, 100, 50, 500, 800]\n",
			wantErr: true,
		},
		{
			name:    "narrow board",
			data:    "board:\n  width: 2\n",
			wantErr: true,
		},
		{
			name:    "base below min",
			data:    "gravity:\n  base: 10ms\n  min: 50ms\n",
			wantErr: true,
		},
		{
			name:    "zero lines per level",
			data:    "scoring:\n  linesPerLevel: 0\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			data:    "board: [",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  height: 24\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.Board.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
