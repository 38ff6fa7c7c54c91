package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glabrego/newsdeck/internal/storage"
)

// Config holds runtime settings for the reader.
type Config struct {
	DBPath    string
	LogPath   string
	FeedFiles []string
	Seed      int64
	Mouse     bool
}

func Default() Config {
	return Config{
		DBPath: storage.MemoryDSN,
		Mouse:  true,
	}
}

func LoadFromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("NEWSDECK_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	cfg.LogPath = os.Getenv("NEWSDECK_LOG_PATH")
	cfg.FeedFiles = splitList(os.Getenv("NEWSDECK_FEED_FILES"))

	if v := strings.TrimSpace(os.Getenv("NEWSDECK_SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("NEWSDECK_SEED must be an integer: %s", v)
		}
		cfg.Seed = seed
	}

	switch mouse := strings.ToLower(strings.TrimSpace(os.Getenv("NEWSDECK_MOUSE"))); mouse {
	case "", "on":
		cfg.Mouse = true
	case "off":
		cfg.Mouse = false
	default:
		return Config{}, fmt.Errorf("NEWSDECK_MOUSE must be on or off: %s", mouse)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("DBPath is required")
	}
	for _, path := range c.FeedFiles {
		if strings.TrimSpace(path) == "" {
			return errors.New("feed file paths must not be blank")
		}
	}
	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
