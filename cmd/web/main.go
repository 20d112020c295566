// cmd/web/main.go
//
// Portfolio backend – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load configuration (conf/.env → conf/global.yaml → PORTFOLIO_* env),
//     resolving vault: references.
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Open the optional GeoLite2 database for contact-message origins.
//
//  4. Build the store: local JSON file, plus the MySQL document backend
//     when a remote DSN is configured.  A dead remote at boot is logged
//     and the process runs file-only; it is not fatal.
//
//  5. Wire the router: public portfolio + contact endpoints, gated admin
//     API, Prometheus /metrics.
//
//  6. Wrap with security headers and ForceHTTPS, then serve until
//     SIGINT/SIGTERM, draining in-flight requests on the way out.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skjuv/portfolio/internal/api"
	"github.com/skjuv/portfolio/internal/config"
	"github.com/skjuv/portfolio/internal/database"
	"github.com/skjuv/portfolio/internal/gate"
	"github.com/skjuv/portfolio/internal/logger"
	"github.com/skjuv/portfolio/internal/middleware"
	"github.com/skjuv/portfolio/internal/ratelimit"
	"github.com/skjuv/portfolio/internal/requestinfo"
	"github.com/skjuv/portfolio/internal/server"
	"github.com/skjuv/portfolio/internal/session"
	"github.com/skjuv/portfolio/internal/store"
)

// Abuse limits for the two unauthenticated write endpoints.
const (
	loginAttemptsPerMinute = 5
	contactPerWindow       = 3
	contactWindow          = 10 * time.Minute
)

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	//
	// ── 2.  Logger ──────────────────────────────────────────────────────
	//
	log, err := logger.New(cfg.Paths.Root, runningInTTY())
	if err != nil {
		return fmt.Errorf("start logger: %w", err)
	}
	defer log.Sync()

	//
	// ── 3.  Optional GeoIP ──────────────────────────────────────────────
	//
	if cfg.GeoIP.Database != "" {
		if err := requestinfo.InitGeo(cfg.GeoIP.Database); err != nil {
			log.Warnw("geoip database unavailable, origin lookups disabled",
				"path", cfg.GeoIP.Database, "err", err)
		} else {
			log.Infow("geoip online", "path", cfg.GeoIP.Database)
		}
	}

	//
	// ── 4.  Store: local file + optional remote row ─────────────────────
	//
	local := store.NewFileBackend(cfg.Storage.DataFile)

	var remote store.Backend
	if cfg.Storage.RemoteDSN != "" {
		db, err := database.Open(cfg.Storage.RemoteDSN)
		if err != nil {
			log.Warnw("remote database unreachable at boot, running file-only", "err", err)
		} else {
			defer db.Close()
			remote = store.NewRemoteBackend(db)
			log.Infow("remote store online")
		}
	}
	st := store.New(local, remote)

	//
	// ── 5.  Router ──────────────────────────────────────────────────────
	//
	secret := []byte(cfg.Auth.Secret)
	sessions := session.New(secret, cfg.Auth.AdminPassword, cfg.Auth.SecureCookies)
	handlers := api.New(st, sessions,
		ratelimit.New(loginAttemptsPerMinute, time.Minute),
		ratelimit.New(contactPerWindow, contactWindow),
	)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(gate.New(secret).Middleware)
	r.Mount("/api", handlers.Routes())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	handler := middleware.ForceHTTPS(cfg.HTTP.ForceHTTPS, middleware.Security(r))

	//
	// ── 6.  Serve until signalled ───────────────────────────────────────
	//
	srv := server.New(cfg.HTTP.ListenAddr, handler)

	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "addr", cfg.HTTP.ListenAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
		log.Infow("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}

	log.Infow("bye")
	return nil
}
