// Package config reads server settings from flags, falling back to
// environment variables and then to defaults.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

type Config struct {
	Addr     string
	Origins  []string
	LogLevel log.Level
}

// Load parses args (without the program name).
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	addr := fs.String("addr", getenv("CHESS_ADDR", ":3000"), "listen address")
	origins := fs.String("origins", getenv("CHESS_ORIGINS", "http://localhost:5173"), "comma-separated origins allowed by CORS and the websocket upgrade")
	level := fs.String("log-level", getenv("CHESS_LOG_LEVEL", "info"), "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(*level)))
	if err != nil {
		return Config{}, fmt.Errorf("log level %q: %w", *level, err)
	}
	cfg := Config{
		Addr:     *addr,
		Origins:  splitList(*origins),
		LogLevel: lvl,
	}
	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("listen address is empty")
	}
	if len(cfg.Origins) == 0 {
		return Config{}, fmt.Errorf("no allowed origins")
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
