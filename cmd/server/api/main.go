package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/tetris/pkg/api"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/cbodonnell/tetris/pkg/version"
)

func main() {
	port := flag.Int("port", 9090, "port to listen on")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting api server version %s", version.Get())
	ctx := context.Background()

	connStr := os.Getenv("TETRIS_DATABASE_URL")
	if connStr == "" {
		connStr = "sqlite://tetris.db"
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

	apiServerOpts := api.NewAPIServerOptions{
		Port:       *port,
		Repository: repository,
		Logger:     logger.Named("api"),
	}
	tlsCertFile := os.Getenv("TETRIS_API_TLS_CERT_FILE")
	tlsKeyFile := os.Getenv("TETRIS_API_TLS_KEY_FILE")
	if tlsCertFile != "" && tlsKeyFile != "" {
		apiServerOpts.TLS = &api.TLSConfig{
			CertFile: tlsCertFile,
			KeyFile:  tlsKeyFile,
		}
	}
	server := api.NewAPIServer(apiServerOpts)
	go server.Start()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop server: %v", err)
	}
}
