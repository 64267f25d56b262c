package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/tetris/client/flow"
	"github.com/cbodonnell/tetris/client/input"
	"github.com/cbodonnell/tetris/client/scenes"
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// gameManager runs one frame per Update.
	gameManager *game.GameManager
	// commandQueue feeds input into the game manager.
	commandQueue queue.Queue[types.Command]
	// stateStore holds the snapshot drawn by the scenes.
	stateStore state.SnapshotStore
	// boardWidth is the board width in cells.
	boardWidth int
	// screenWidth and screenHeight fit the board and the score panel.
	screenWidth  int
	screenHeight int
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
	// commands is reused between updates.
	commands []types.Command
}

type NewGameOptions struct {
	Debug        bool
	GameManager  *game.GameManager
	CommandQueue queue.Queue[types.Command]
	StateStore   state.SnapshotStore
	BoardWidth   int
	BoardHeight  int
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug:        opts.Debug,
		gameManager:  opts.GameManager,
		commandQueue: opts.CommandQueue,
		stateStore:   opts.StateStore,
		boardWidth:   opts.BoardWidth,
		screenWidth:  max(DefaultScreenWidth, scenes.BoardRight(opts.BoardWidth)+hudWidth),
		screenHeight: max(DefaultScreenHeight, scenes.BoardBottom(opts.BoardHeight)+scenes.CellSize),
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		StateStore: g.stateStore,
		OnStart: func() {
			g.enqueue(types.CommandStart)
		},
		OnQuit: func() {
			g.enqueue(types.CommandQuit)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = flow.GameModeMenu
	return nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(g.stateStore, g.boardWidth)
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = flow.GameModePlay
	return nil
}

func (g *Game) Update() error {
	// Handle input
	g.handleInput()

	// Advance the game by one tick
	err := g.gameManager.Frame(time.Second / time.Duration(ebiten.TPS()))
	if errors.Is(err, game.ErrQuit) {
		return ebiten.Termination
	}
	if err != nil {
		log.Error("Failed to run frame: %v", err)
	}

	// Follow the game into the matching scene
	if err := g.syncMode(); err != nil {
		return err
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() {
	g.commands = input.AppendJustPressedCommands(g.commands[:0])
	if input.IsPositiveJustPressed() && g.mode == flow.GameModeMenu {
		g.commands = append(g.commands, types.CommandStart)
	}
	for _, cmd := range g.commands {
		g.enqueue(cmd)
	}
}

func (g *Game) enqueue(cmd types.Command) {
	if err := g.commandQueue.Enqueue(cmd); err != nil {
		log.Warn("Dropped command %s: %v", cmd, err)
	}
}

func (g *Game) syncMode() error {
	snapshot := g.stateStore.Get()
	if snapshot == nil {
		return nil
	}
	mode := flow.ModeForPhase(snapshot.Phase)
	if mode == g.mode {
		return nil
	}
	switch mode {
	case flow.GameModePlay:
		if err := g.loadGame(); err != nil {
			return fmt.Errorf("failed to load game scene: %v", err)
		}
	case flow.GameModeMenu:
		if err := g.loadMenu(); err != nil {
			return fmt.Errorf("failed to load menu scene: %v", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))

	snapshot := g.stateStore.Get()
	if snapshot == nil {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Phase: %s", snapshot.Phase))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Gravity: %s", g.gameManager.Game().GravityInterval()))
}

const (
	DefaultScreenWidth  = 480
	DefaultScreenHeight = 480
	hudWidth            = 180
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.screenWidth, g.screenHeight
}
