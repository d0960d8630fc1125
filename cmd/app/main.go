package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/CrypticClues_Go/internal/concurrency"
	"github.com/osse101/CrypticClues_Go/internal/config"
	"github.com/osse101/CrypticClues_Go/internal/deposit"
	"github.com/osse101/CrypticClues_Go/internal/game"
	"github.com/osse101/CrypticClues_Go/internal/ledger"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/oracle"
	"github.com/osse101/CrypticClues_Go/internal/server"
	"github.com/osse101/CrypticClues_Go/internal/session"
	"github.com/osse101/CrypticClues_Go/internal/view"
	"github.com/osse101/CrypticClues_Go/internal/withdraw"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Configuration loaded", "environment", cfg.Environment, "port", cfg.Port)

	signer, err := ledger.NewKeypairSigner(cfg.PlatformSecretKey, cfg.NetworkPassphrase)
	if err != nil {
		slog.Error("Failed to load custodial signing key", "error", err)
		os.Exit(1)
	}

	ledgerClient := ledger.NewHorizonClient(cfg.HorizonURL, signer)
	oracleClient := oracle.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OracleModel)

	sessions, err := buildSessionStore(cfg)
	if err != nil {
		slog.Error("Failed to initialize session store", "error", err)
		os.Exit(1)
	}

	renderer, err := view.New()
	if err != nil {
		slog.Error("Failed to parse templates", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		SessionTTL:      cfg.SessionTTL,
		PlatformAddress: cfg.PlatformWalletAddress,
		DepositAmount:   cfg.DepositAmount,

		Sessions:    sessions,
		Ledger:      ledgerClient,
		Games:       game.NewService(oracleClient),
		Deposits:    deposit.NewService(ledgerClient, cfg.PlatformWalletAddress, cfg.DepositAmount, cfg.DepositMemoTTL),
		Withdrawals: withdraw.NewService(ledgerClient, sessions, concurrency.NewLockManager()),
		Renderer:    renderer,
	})

	// Run the server in the background so signals can drive shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}

// buildSessionStore selects the session backend from configuration. Memory
// is the default; redis survives restarts at the cost of a dependency.
func buildSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.SessionStore == "redis" {
		rdb, err := session.ConnectRedis(cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		slog.Info("Using redis session store", "addr", cfg.RedisAddr)
		return session.NewRedisStore(rdb, cfg.SessionTTL), nil
	}

	slog.Info("Using in-memory session store", "ttl", cfg.SessionTTL)
	return session.NewMemoryStore(session.DefaultMaxSessions, cfg.SessionTTL), nil
}
