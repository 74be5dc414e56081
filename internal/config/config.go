/*
Package config
File: config.go
Description:
    Process-level settings read from the environment. A '.env' file in
    the working directory is loaded first when present; real environment
    variables always win over it.
*/

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string        // HOTEL_ADDR
	BalanceFile string        // HOTEL_BALANCE_FILE
	DayInterval time.Duration // HOTEL_DAY_INTERVAL
	AutoStart   bool          // HOTEL_AUTOSTART
	Seed        uint64        // HOTEL_SEED, 0 picks a time-based seed
	LogLevel    log.Level     // HOTEL_LOG_LEVEL
	RateLimit   float64       // HOTEL_RATE_LIMIT, requests per second per client
	RateBurst   int           // HOTEL_RATE_BURST
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Addr:        ":8081",
		BalanceFile: "hotel.yaml",
		DayInterval: 5 * time.Second,
		AutoStart:   true,
		LogLevel:    log.InfoLevel,
		RateLimit:   10,
		RateBurst:   20,
	}
}

// Load reads '.env' (if any) and then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from environment variables on top of Default.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := env("HOTEL_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := env("HOTEL_BALANCE_FILE"); v != "" {
		cfg.BalanceFile = v
	}
	if v := env("HOTEL_DAY_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("HOTEL_DAY_INTERVAL %q: must be a positive duration", v)
		}
		cfg.DayInterval = d
	}
	if v := env("HOTEL_AUTOSTART"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("HOTEL_AUTOSTART: %w", err)
		}
		cfg.AutoStart = b
	}
	if v := env("HOTEL_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("HOTEL_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := env("HOTEL_LOG_LEVEL"); v != "" {
		lvl, err := log.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("HOTEL_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = lvl
	}
	if v := env("HOTEL_RATE_LIMIT"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil || r <= 0 {
			return Config{}, fmt.Errorf("HOTEL_RATE_LIMIT %q: must be a positive number", v)
		}
		cfg.RateLimit = r
	}
	if v := env("HOTEL_RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("HOTEL_RATE_BURST %q: must be a positive integer", v)
		}
		cfg.RateBurst = n
	}

	return cfg, nil
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
