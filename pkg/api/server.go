package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/cbodonnell/arena/pkg/api/handlers"
	"github.com/cbodonnell/arena/pkg/api/middleware"
	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/repositories"
	"github.com/gorilla/mux"
)

type APIServer struct {
	server *http.Server
	tls    *TLSConfig
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port        int
	TLS         *TLSConfig
	AllowOrigin string
	Repository  repositories.Repository
	Sessions    handlers.SessionLister
}

// NewAPIServer creates a new http.Server for the tournament API
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", opts.Port),
		Handler: NewRouter(opts),
	}
	return &APIServer{
		server: server,
		tls:    opts.TLS,
	}
}

// NewRouter registers the API routes. Port and TLS are ignored.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	repo := opts.Repository

	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware())
	r.Use(middleware.NewCORSMiddleware(opts.AllowOrigin))

	r.HandleFunc("/players", handlers.HandleListPlayers(repo)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/players", handlers.HandleAddPlayer(repo)).Methods(http.MethodPost)
	r.HandleFunc("/players/eligible", handlers.HandleEligiblePlayers(repo)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/players/stats", handlers.HandlePlayerStats(repo)).Methods(http.MethodGet, http.MethodOptions)

	r.HandleFunc("/games", handlers.HandleListGames(repo)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/games", handlers.HandleAddGame(repo)).Methods(http.MethodPost)
	r.HandleFunc("/games/{player1}/{player2}", handlers.HandleGetGame(repo)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/games/{player1}/{player2}", handlers.HandleDeleteGame(repo)).Methods(http.MethodDelete)

	r.HandleFunc("/tournament/max-losses", handlers.HandleGetMaxLosses(repo)).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/tournament/max-losses", handlers.HandleSetMaxLosses(repo)).Methods(http.MethodPut)

	if opts.Sessions != nil {
		r.HandleFunc("/sessions", handlers.HandleListSessions(opts.Sessions)).Methods(http.MethodGet, http.MethodOptions)
	}
	return r
}

// Start starts the APIServer and blocks until it is stopped
func (s *APIServer) Start() {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
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
