/*
Package main
File: main.go
Description: Server entry point. Loads the hotel balance, starts the real-time
WebSocket hub and the day timer that keeps the hotel economy moving.
*/

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/everforgeworks/hotel-tycoon/internal/api"
	"github.com/everforgeworks/hotel-tycoon/internal/config"
	"github.com/everforgeworks/hotel-tycoon/internal/game"
	"github.com/everforgeworks/hotel-tycoon/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "hotel"})

	// 1. Process settings (.env, then the environment)
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	logger.SetLevel(cfg.LogLevel)

	// 2. Balance constants from YAML
	balance := loadBalance(cfg.BalanceFile, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. State owner and its listeners
	hotel := game.NewHotel(balance, game.NewRand(cfg.Seed), logger.WithPrefix("game"))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := telemetry.NewMetrics(reg)
	metrics.Sync(hotel.Snapshot())
	hotel.Subscribe(metrics.Observe)

	hub := api.NewHub(logger.WithPrefix("ws"))
	hotel.Subscribe(hub.Observe)
	go hub.Run(ctx)

	// 4. THE DAY TIMER
	runner := game.NewRunner(hotel, cfg.DayInterval, logger.WithPrefix("runner"))
	if cfg.AutoStart {
		runner.Start(ctx)
	}

	// 5. Hot-reload: SIGHUP re-reads the balance file without a restart
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		defer signal.Stop(sigChan)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigChan:
				logger.Info("SIGHUP: reloading balance", "file", cfg.BalanceFile)
				b, err := game.LoadBalance(cfg.BalanceFile)
				if err != nil {
					logger.Error("reload balance, keeping current", "err", err)
					continue
				}
				hotel.SetBalance(b)
			}
		}
	}()

	// 6. Router and server
	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: api.NewRouter(api.Options{
			Context:  ctx,
			Hotel:    hotel,
			Runner:   runner,
			Hub:      hub,
			Gatherer: reg,
			Limiter:  api.NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
			Logger:   logger.WithPrefix("http"),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("hotel server live", "addr", cfg.Addr, "day_interval", cfg.DayInterval, "autostart", cfg.AutoStart)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", "err", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	runner.Pause()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
	}
}

// loadBalance falls back to the built-in defaults when the file is missing.
// A file that exists but does not parse is fatal.
func loadBalance(path string, logger *log.Logger) game.Balance {
	b, err := game.LoadBalance(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Warn("balance file not found, using defaults", "file", path)
		return game.DefaultBalance()
	}
	if err != nil {
		logger.Fatal("balance", "err", err)
	}
	return b
}
