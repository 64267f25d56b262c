package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/tetris/pkg/api/handlers"
	"github.com/cbodonnell/tetris/pkg/api/middleware"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/cbodonnell/tetris/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
	logger *log.Logger
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port       int
	TLS        *TLSConfig
	Repository repositories.Repository
	Logger     *log.Logger
}

// NewRouter returns the API routes backed by repository.
func NewRouter(repository repositories.Repository, logger *log.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.NewLoggingMiddleware(logger))
	router.Use(middleware.NewCORSMiddleware())

	router.HandleFunc("/highscore", handlers.HandleGetHighScore(repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/records", handlers.HandleListRecords(repository)).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/records/{recordID}", handlers.HandleGetRecord(repository)).Methods(http.MethodGet, http.MethodOptions)

	return router
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	logger := opts.Logger
	if logger == nil {
		logger = log.DefaultLogger().Named("api")
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts.Repository, logger),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
		logger: logger,
	}
}

// Start starts the APIServer and blocks until it is stopped
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		s.logger.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		s.logger.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			s.logger.Info("API server closed")
			return
		}
		s.logger.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
