package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cbodonnell/arena/pkg/api"
	"github.com/cbodonnell/arena/pkg/config"
	"github.com/cbodonnell/arena/pkg/game/engine"
	"github.com/cbodonnell/arena/pkg/lobby"
	"github.com/cbodonnell/arena/pkg/log"
	"github.com/cbodonnell/arena/pkg/network"
	"github.com/cbodonnell/arena/pkg/repositories"
	"github.com/cbodonnell/arena/pkg/workers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	wsPort := flag.Int("ws-port", cfg.WSPort, "WebSocket port to listen on")
	tcpPort := flag.Int("tcp-port", cfg.TCPPort, "TCP port to listen on")
	apiPort := flag.Int("api-port", cfg.APIPort, "API port to listen on")
	databaseURL := flag.String("database-url", cfg.DatabaseURL, "sqlite:// or postgresql:// database URL")
	migrationsDir := flag.String("migrations", cfg.MigrationsDir, "Directory of migrations, one subdirectory per database type")
	tickRate := flag.Float64("tick-rate", cfg.TickRate, "Simulation ticks per second")
	allowOrigin := flag.String("allow-origin", cfg.AllowOrigin, "Origin allowed to call the API")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	if *tickRate <= 0 {
		panic(fmt.Sprintf("Tick rate must be positive, got %v", *tickRate))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repository := openRepository(ctx, *databaseURL, *migrationsDir)
	defer repository.Close(context.Background())

	resultsChan := make(chan workers.GameResult, 100)
	resultsWorker := workers.NewResultsWorker(workers.NewResultsWorkerOptions{
		Repository:  repository,
		ResultsChan: resultsChan,
	})
	go resultsWorker.Start(ctx)

	gameLobby := lobby.NewLobby(lobby.NewLobbyOptions{
		Repository:   repository,
		ResultsChan:  resultsChan,
		EngineConfig: engine.DefaultConfig(),
		TickInterval: time.Duration(float64(time.Second) / *tickRate),
	})

	var tlsConfig *network.TLSConfig
	var apiTLSConfig *api.TLSConfig
	if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
		tlsConfig = &network.TLSConfig{CertFile: cfg.TLSCertFile, KeyFile: cfg.TLSKeyFile}
		apiTLSConfig = &api.TLSConfig{CertFile: cfg.TLSCertFile, KeyFile: cfg.TLSKeyFile}
	}

	wsServer := network.NewWSServer(network.NewWSServerOptions{Port: *wsPort, TLS: tlsConfig})
	go func() {
		if err := wsServer.Start(ctx, gameLobby.HandleConn); err != nil {
			log.Error("WebSocket server error: %v", err)
		}
	}()

	tcpServer := network.NewTCPServer(network.NewTCPServerOptions{Port: *tcpPort})
	go func() {
		if err := tcpServer.Start(ctx, gameLobby.HandleConn); err != nil {
			log.Error("TCP server error: %v", err)
		}
	}()

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:        *apiPort,
		TLS:         apiTLSConfig,
		AllowOrigin: *allowOrigin,
		Repository:  repository,
		Sessions:    gameLobby,
	})
	go apiServer.Start()

	log.Info("Arena server started")
	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Stop(shutdownCtx); err != nil {
		log.Error("Failed to stop API server: %v", err)
	}
}

// openRepository picks the repository implementation from the URL scheme.
func openRepository(ctx context.Context, connStr string, migrationsDir string) repositories.Repository {
	u, err := url.Parse(connStr)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse connection string: %v", err))
	}

	switch u.Scheme {
	case "sqlite":
		repository, err := repositories.NewSQLiteRepository(ctx, u.Host+u.Path, filepath.Join(migrationsDir, "sqlite"))
		if err != nil {
			panic(fmt.Sprintf("Failed to create SQLite repository: %v", err))
		}
		return repository
	case "postgres", "postgresql":
		repository, err := repositories.NewPostgresRepository(ctx, u.String(), filepath.Join(migrationsDir, "postgres"))
		if err != nil {
			panic(fmt.Sprintf("Failed to create Postgres repository: %v", err))
		}
		return repository
	default:
		panic(fmt.Sprintf("Unknown database type %s", u.Scheme))
	}
}
