package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/circledodge/pkg/api/handlers"
	"github.com/cbodonnell/circledodge/pkg/api/middleware"
	"github.com/cbodonnell/circledodge/pkg/config"
	"github.com/cbodonnell/circledodge/pkg/log"
	"github.com/cbodonnell/circledodge/pkg/state"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
}

type NewAPIServerOptions struct {
	Port         int
	Config       *config.Config
	StateManager state.StateManager
	Submitter    handlers.CommandSubmitter
	// EventFeed serves the websocket event feed. Optional.
	EventFeed http.Handler
	// Handler replaces the routes built from the other options. Optional.
	Handler http.Handler
}

// NewAPIServer creates a new http.Server for the debug API
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	handler := opts.Handler
	if handler == nil {
		handler = NewRouter(opts)
	}
	return &APIServer{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", opts.Port),
			Handler: handler,
		},
	}
}

// NewRouter returns the debug API routes.
func NewRouter(opts NewAPIServerOptions) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Logging, middleware.CORS)

	router.HandleFunc("/state", handlers.HandleGetState(opts.StateManager, opts.Config)).
		Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/avatar/{action:grow|shrink}", handlers.HandleAvatarCommand(opts.Submitter)).
		Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/restart", handlers.HandleRestart(opts.Submitter)).
		Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/version", handlers.HandleVersion()).
		Methods(http.MethodGet, http.MethodOptions)
	if opts.EventFeed != nil {
		router.Handle("/events", opts.EventFeed).Methods(http.MethodGet)
	}

	return router
}

// Start starts the APIServer
func (s *APIServer) Start() {
	log.Info("API server listening on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return
		}
		log.Error("API server error: %v", err)
	}
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
