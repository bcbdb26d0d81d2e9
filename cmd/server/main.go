// Command server runs the receipt processor HTTP API. main wires the
// high-level dependencies (config, logging, tracing, the in-memory
// points store) and keeps the server lifecycle small; all business
// logic lives under internal/.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/camppp/Fetch-BE-Take-Home/internal/config"
	httpapi "github.com/camppp/Fetch-BE-Take-Home/internal/http"
	"github.com/camppp/Fetch-BE-Take-Home/internal/identity"
	"github.com/camppp/Fetch-BE-Take-Home/internal/observability"
	"github.com/camppp/Fetch-BE-Take-Home/internal/services"
	"github.com/camppp/Fetch-BE-Take-Home/internal/store"
	"github.com/camppp/Fetch-BE-Take-Home/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// Best effort: a missing .env is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogging(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("tracing setup failed")
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error().Err(err).Msg("tracing shutdown failed")
		}
	}()

	// The store is the only shared mutable state; constructed once and
	// injected, never reached as a global.
	svc := services.NewReceiptService(store.NewMemoryStore(), identity.UUIDGenerator{})

	r := gin.New()
	httpapi.RegisterRoutes(r, cfg, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("version", version).Msg("receipt processor listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
