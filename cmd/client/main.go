package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	clientgame "github.com/cbodonnell/tetris/client/game"
	"github.com/cbodonnell/tetris/pkg/config"
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/cbodonnell/tetris/pkg/version"
	"github.com/cbodonnell/tetris/pkg/workers"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "info", "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			panic(fmt.Sprintf("Failed to load config: %v", err))
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	connStr := os.Getenv("TETRIS_DATABASE_URL")
	if connStr == "" {
		connStr = "file://highscore.json"
	}
	migrations := os.Getenv("TETRIS_MIGRATIONS_DIR")
	if migrations == "" {
		migrations = "./migrations/sqlite"
	}
	repository, err := repositories.NewRepository(ctx, connStr, migrations)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(ctx)

	saveWorker := workers.NewSaveScoreWorker(workers.NewSaveScoreWorkerOptions{
		Repository: repository,
		Logger:     logger.Named("save"),
	})
	go saveWorker.Start(ctx)
	scoreKeeper := workers.NewScoreKeeper(workers.NewScoreKeeperOptions{
		Repository: repository,
		Worker:     saveWorker,
	})

	// shown on the menu before the first game loads it again
	highScore, err := scoreKeeper.LoadHighScore()
	if err != nil {
		log.Warn("Failed to load high score: %v", err)
	}

	commandQueue := queue.NewInMemoryQueue[types.Command](64)
	stateStore := state.NewInMemorySnapshotStore()
	gameManager, err := game.NewGameManager(game.NewGameManagerOptions{
		CommandQueue: commandQueue,
		StateStore:   stateStore,
		GameOptions: game.NewGameOptions{
			Config:    cfg,
			Store:     scoreKeeper,
			HighScore: highScore,
			Logger:    logger.Named("game"),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game manager: %v", err))
	}

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Debug:        *debug,
		GameManager:  gameManager,
		CommandQueue: commandQueue,
		StateStore:   stateStore,
		BoardWidth:   cfg.Board.Width,
		BoardHeight:  cfg.Board.Height,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Tetris")
	runErr := ebiten.RunGame(g)

	// a closed window skips the quit command, so persist the game here too
	gameManager.Game().Quit()
	flushCtx, flushCancel := context.WithTimeout(ctx, 2*time.Second)
	defer flushCancel()
	if err := scoreKeeper.Flush(flushCtx); err != nil {
		log.Error("Failed to flush scores: %v", err)
	}

	if runErr != nil {
		panic(fmt.Sprintf("Failed to run game: %v", runErr))
	}
}
