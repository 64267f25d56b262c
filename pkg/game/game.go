package game

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/cbodonnell/tetris/pkg/config"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/google/uuid"
)

// ScoreStore persists the high score and finished games. Implementations
// must not block the caller for long; failures are logged and never change
// the course of a game.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(highScore int) error
	SaveResult(result *types.Result) error
}

// Game is a single game instance. It is not safe for concurrent use; one
// goroutine owns it for its whole lifetime.
type Game struct {
	id      uuid.UUID
	cfg     *config.Config
	rng     *rand.Rand
	store   ScoreStore
	logger  *log.Logger
	now     func() time.Time
	phase   types.Phase
	board   *Board
	piece   *ActivePiece
	spawner *Spawner
	scorer  *Scorer
	// elapsed is the time accumulated towards the next gravity step
	elapsed time.Duration
	// pieces is the number of pieces locked so far
	pieces    int
	startedAt time.Time
	endedAt   time.Time
}

// NewGameOptions contains options for creating a new Game.
type NewGameOptions struct {
	// Config holds the rules. Defaults to config.Default().
	Config *config.Config
	// Rand is the piece selection source. Defaults to one seeded from Config.Seed.
	Rand *rand.Rand
	// Store persists scores. Optional.
	Store ScoreStore
	// HighScore is carried over from a previous instance in this process.
	HighScore int
	// Logger defaults to the package default logger.
	Logger *log.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewGame creates a game in the NotStarted phase. The config is validated
// so every clear the board can produce has a score table entry.
func NewGame(opts NewGameOptions) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	rng := opts.Rand
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger().Named("game")
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Game{
		id:      uuid.New(),
		cfg:     cfg,
		rng:     rng,
		store:   opts.Store,
		logger:  logger,
		now:     now,
		phase:   types.PhaseNotStarted,
		board:   NewBoard(cfg.Board.Width, cfg.Board.Height),
		spawner: NewSpawner(rng, cfg.Board.Width),
		scorer:  NewScorer(scoreRules(cfg), opts.HighScore),
	}, nil
}

func scoreRules(cfg *config.Config) ScoreRules {
	return ScoreRules{
		Table:         cfg.Scoring.Table,
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		StartLevel:    cfg.Scoring.StartLevel,
		BaseInterval:  cfg.Gravity.Base,
		Step:          cfg.Gravity.Step,
		MinInterval:   cfg.Gravity.Min,
	}
}

// Start moves the game from NotStarted to Playing: it resets the board and
// score, loads the persisted high score and spawns the first piece.
func (g *Game) Start() error {
	if g.phase != types.PhaseNotStarted {
		return fmt.Errorf("%w: phase is %s", ErrAlreadyStarted, g.phase)
	}

	highScore := g.scorer.HighScore()
	if g.store != nil {
		stored, err := g.store.LoadHighScore()
		if err != nil {
			g.logger.Warn("Failed to load high score, using %d: %v", highScore, err)
		} else {
			highScore = max(highScore, stored)
		}
	}

	g.board = NewBoard(g.cfg.Board.Width, g.cfg.Board.Height)
	g.scorer = NewScorer(scoreRules(g.cfg), highScore)
	g.elapsed = 0
	g.pieces = 0
	g.startedAt = g.now()
	g.phase = types.PhasePlaying
	g.logger.Info("Game %s started with high score %d", g.id, highScore)

	g.spawnPiece()
	return nil
}

// Tick advances gravity by elapsed. When the accumulated time reaches the
// gravity interval the piece drops one row, or locks if it cannot, and the
// accumulator resets. Tick does nothing unless the game is Playing.
func (g *Game) Tick(elapsed time.Duration) error {
	if elapsed < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeElapsed, elapsed)
	}
	if g.phase != types.PhasePlaying {
		return nil
	}

	g.elapsed += elapsed
	if g.elapsed < g.scorer.GravityInterval() {
		return nil
	}
	g.elapsed = 0

	if g.piece.Move(g.board, 0, 1) {
		return nil
	}
	return g.lockPiece()
}

// Command applies one player command. Invalid moves are silently ignored.
// While Paused only TogglePause is processed, and nothing is processed
// before Start or after game over.
func (g *Game) Command(cmd types.Command) error {
	if !cmd.IsGameCommand() {
		return fmt.Errorf("%w: %s", ErrInvalidCommand, cmd)
	}

	switch g.phase {
	case types.PhasePlaying:
		switch cmd {
		case types.CommandLeft:
			g.piece.Move(g.board, -1, 0)
		case types.CommandRight:
			g.piece.Move(g.board, 1, 0)
		case types.CommandSoftDrop:
			g.piece.Move(g.board, 0, 1)
		case types.CommandRotate:
			g.piece.Rotate(g.board)
		case types.CommandTogglePause:
			g.phase = types.PhasePaused
			g.logger.Debug("Game %s paused", g.id)
		}
	case types.PhasePaused:
		if cmd == types.CommandTogglePause {
			g.phase = types.PhasePlaying
			g.logger.Debug("Game %s resumed", g.id)
		}
	}

	return nil
}

// Quit persists the high score of a game that is still in progress. Games
// that reached GameOver have already been persisted.
func (g *Game) Quit() {
	if g.phase != types.PhasePlaying && g.phase != types.PhasePaused {
		return
	}
	g.saveHighScore()
}

func (g *Game) lockPiece() error {
	g.board.Lock(g.piece.Shape, g.piece.Position, g.piece.Kind)
	g.pieces++
	g.logger.Trace("Locked %s at (%d, %d)", g.piece.Kind, g.piece.Position.X, g.piece.Position.Y)
	g.piece = nil

	level := g.scorer.Level()
	cleared := g.board.ClearLines()
	points, err := g.scorer.RegisterClear(cleared)
	if err != nil {
		// the lock and the clear already happened, keep the game playable
		g.spawnPiece()
		return fmt.Errorf("failed to register clear: %w", err)
	}
	if cleared > 0 {
		g.logger.Debug("Cleared %d lines for %d points", cleared, points)
	}
	if g.scorer.Level() != level {
		g.logger.Debug("Level up to %d, gravity interval %s", g.scorer.Level(), g.scorer.GravityInterval())
	}

	g.spawnPiece()
	return nil
}

// spawnPiece places a new piece at the top. A blocked spawn ends the game
// without locking the new piece.
func (g *Game) spawnPiece() {
	piece := g.spawner.Spawn()
	if !piece.Fits(g.board) {
		g.gameOver()
		return
	}
	g.piece = piece
	g.logger.Trace("Spawned %s at (%d, %d)", piece.Kind, piece.Position.X, piece.Position.Y)
}

func (g *Game) gameOver() {
	g.phase = types.PhaseGameOver
	g.piece = nil
	g.endedAt = g.now()
	g.logger.Info("Game %s over with score %d (high score %d)", g.id, g.scorer.Score(), g.scorer.HighScore())

	g.saveHighScore()
	if g.store != nil {
		if err := g.store.SaveResult(g.Result()); err != nil {
			g.logger.Error("Failed to save game result: %v", err)
		}
	}
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.scorer.HighScore()); err != nil {
		g.logger.Error("Failed to save high score: %v", err)
	}
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Phase() types.Phase {
	return g.phase
}

func (g *Game) Score() int {
	return g.scorer.Score()
}

func (g *Game) HighScore() int {
	return g.scorer.HighScore()
}

func (g *Game) Level() int {
	return g.scorer.Level()
}

func (g *Game) Lines() int {
	return g.scorer.Lines()
}

// GravityInterval returns the current time between gravity steps.
func (g *Game) GravityInterval() time.Duration {
	return g.scorer.GravityInterval()
}

// Snapshot returns a read-only copy of the game for renderers.
func (g *Game) Snapshot() *types.Snapshot {
	snapshot := &types.Snapshot{
		SessionID: g.id,
		Timestamp: g.now().UnixMilli(),
		Phase:     g.phase,
		Width:     g.board.Width(),
		Height:    g.board.Height(),
		Cells:     g.board.Cells(),
		Score:     g.scorer.Score(),
		HighScore: g.scorer.HighScore(),
		Level:     g.scorer.Level(),
		Lines:     g.scorer.Lines(),
	}
	if g.piece != nil {
		snapshot.Piece = g.piece.State()
	}
	return snapshot
}

// Result summarizes the game. It is nil until the game is over.
func (g *Game) Result() *types.Result {
	if g.phase != types.PhaseGameOver {
		return nil
	}
	return &types.Result{
		SessionID: g.id,
		Score:     g.scorer.Score(),
		HighScore: g.scorer.HighScore(),
		Lines:     g.scorer.Lines(),
		Level:     g.scorer.Level(),
		Pieces:    g.pieces,
		StartedAt: g.startedAt,
		EndedAt:   g.endedAt,
		Board:     g.Snapshot(),
	}
}
