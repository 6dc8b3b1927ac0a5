// Package console parses console command flags and starts the console server.
package console

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/arenacontrol/internal/platform/cmd"
	"github.com/louisbranch/arenacontrol/internal/platform/timeouts"
	"github.com/louisbranch/arenacontrol/internal/services/console"
)

// Config holds console command configuration.
type Config struct {
	HTTPAddr   string `env:"ARENA_CONTROL_HTTP_ADDR"         envDefault:"localhost:8090"`
	BackendURL string `env:"ARENA_CONTROL_BACKEND_URL"       envDefault:"http://localhost:8000"`
	// BackendTimeout defaults to timeouts.BackendRequest when unset.
	BackendTimeout time.Duration `env:"ARENA_CONTROL_BACKEND_TIMEOUT"`
	DBPath         string        `env:"ARENA_CONTROL_DB_PATH"           envDefault:"data/console.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{BackendTimeout: timeouts.BackendRequest}
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BackendURL, "backend-url", cfg.BackendURL, "arena backend base URL")
	fs.DurationVar(&cfg.BackendTimeout, "backend-timeout", cfg.BackendTimeout, "per-call backend timeout (0 disables)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "submission tracking database path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.BackendTimeout < 0 {
		return Config{}, fmt.Errorf("backend timeout must not be negative: %s", cfg.BackendTimeout)
	}
	return cfg, nil
}

// Run starts the console server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceConsole, func(ctx context.Context) error {
		server, err := console.NewServer(ctx, console.Config{
			HTTPAddr:       cfg.HTTPAddr,
			BackendURL:     cfg.BackendURL,
			BackendTimeout: cfg.BackendTimeout,
			DBPath:         cfg.DBPath,
		})
		if err != nil {
			return fmt.Errorf("init console server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve console: %w", err)
		}
		return nil
	})
}
