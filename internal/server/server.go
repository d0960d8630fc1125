package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/CrypticClues_Go/internal/deposit"
	"github.com/osse101/CrypticClues_Go/internal/game"
	"github.com/osse101/CrypticClues_Go/internal/handler"
	"github.com/osse101/CrypticClues_Go/internal/ledger"
	"github.com/osse101/CrypticClues_Go/internal/logger"
	"github.com/osse101/CrypticClues_Go/internal/metrics"
	"github.com/osse101/CrypticClues_Go/internal/session"
	"github.com/osse101/CrypticClues_Go/internal/view"
	"github.com/osse101/CrypticClues_Go/internal/withdraw"
)

// Options collects the services the server routes to.
type Options struct {
	Port            int
	SessionTTL      time.Duration
	PlatformAddress string
	DepositAmount   string

	Sessions    session.Store
	Ledger      ledger.Client
	Games       game.Service
	Deposits    deposit.Service
	Withdrawals withdraw.Service
	Renderer    *view.Renderer
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(session.Middleware(opts.SessionTTL))

	gameHandler := handler.NewGameHandler(opts.Games, opts.Sessions, opts.Ledger, opts.Renderer, opts.PlatformAddress, opts.DepositAmount)
	paymentHandler := handler.NewPaymentHandler(opts.Deposits, opts.Sessions, opts.PlatformAddress, opts.DepositAmount)
	withdrawHandler := handler.NewWithdrawHandler(opts.Withdrawals, opts.Sessions, opts.Renderer)

	// Health check route (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Game pages
	r.Get("/", gameHandler.HandleIndex)
	r.Get("/start", gameHandler.HandleStart)
	r.Get("/reset", gameHandler.HandleReset)
	r.Post("/submit", gameHandler.HandleSubmit)
	r.Get("/change-difficulty", gameHandler.HandleChangeDifficulty)

	// Deposit endpoints
	r.Post("/generate-payment", paymentHandler.HandleGeneratePayment)
	r.Get("/confirm-payment", paymentHandler.HandleConfirmPayment)

	// Withdrawal endpoints
	r.Get("/withdraw", withdrawHandler.HandleWithdrawPage)
	r.Post("/process-withdrawal", withdrawHandler.HandleProcessWithdrawal)

	// Embedded assets
	r.Handle("/static/*", view.Static())

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints, metrics, and assets
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") ||
			strings.HasPrefix(r.URL.Path, "/static/") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}
