package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/userportal/gateway/internal/api"
	"github.com/userportal/gateway/internal/infrastructure/config"
	"github.com/userportal/gateway/internal/infrastructure/sessionstore"
	"github.com/userportal/gateway/internal/upstream"
	"github.com/userportal/gateway/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store api.Store
	if cfg.Redis.Addr != "" {
		rdb, err := sessionstore.Connect(ctx, sessionstore.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect")
		}
		defer rdb.Close()
		store = sessionstore.NewRedis(rdb, cfg.SessionTTL)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("session store: redis")
	} else {
		mem := sessionstore.NewMemory(cfg.SessionTTL)
		mem.StartSweeper(ctx, 0)
		store = mem
		log.Info().Msg("session store: in-memory")
	}

	client, err := upstream.New(upstream.Config{
		BaseURL:    cfg.Upstream.BaseURL,
		Timeout:    cfg.Upstream.Timeout,
		MaxRetries: cfg.Upstream.MaxRetries,
		RetryDelay: cfg.Upstream.RetryDelay,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("upstream client")
	}

	e := api.NewRouter(cfg.CookieSecret, store, client, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server start")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("upstream", cfg.Upstream.BaseURL).Msg("gateway listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
