package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cbodonnell/tetris/client/terminal"
	"github.com/cbodonnell/tetris/pkg/config"
	"github.com/cbodonnell/tetris/pkg/game"
	"github.com/cbodonnell/tetris/pkg/game/types"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/queue"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/cbodonnell/tetris/pkg/state"
	"github.com/cbodonnell/tetris/pkg/version"
	"github.com/cbodonnell/tetris/pkg/workers"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", "tetris.log", "File to write logs to, empty to discard them")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	// stdout belongs to the screen
	var out io.Writer = io.Discard
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			panic(fmt.Sprintf("Failed to open log file: %v", err))
		}
		defer f.Close()
		out = f
	}
	logger := log.New(out, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)

	log.Info("Starting terminal client version %s", version.Get())

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
	defer repository.Close(context.Background())

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
		CommandQueue:  commandQueue,
		StateStore:    stateStore,
		FrameInterval: cfg.FrameInterval,
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

	client, err := terminal.NewClient(terminal.NewClientOptions{
		CommandQueue:  commandQueue,
		StateStore:    stateStore,
		FrameInterval: cfg.FrameInterval,
		Logger:        logger.Named("terminal"),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create terminal client: %v", err))
	}

	runCtx, stop := context.WithCancel(ctx)
	managerDone := make(chan error, 1)
	go func() {
		managerDone <- gameManager.Run(runCtx)
		stop()
	}()

	client.Run(runCtx)
	stop()
	client.Close()

	if err := <-managerDone; err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Game manager stopped: %v", err)
	}

	// the save worker must drain before ctx is cancelled
	flushCtx, flushCancel := context.WithTimeout(ctx, 2*time.Second)
	defer flushCancel()
	if err := scoreKeeper.Flush(flushCtx); err != nil {
		log.Error("Failed to flush scores: %v", err)
	}
}
