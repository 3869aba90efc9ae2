// Package config loads spotkeep's environment-based configuration.
package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/spotkeep/spotkeep/spotify"
)

// Config holds all environment-based configuration for spotkeep.
type Config struct {
	// Logical user whose credential set is resolved. Multiple users are
	// independent credential sets keyed by this ID.
	UserID string `env:"SPOTIFY_USER_ID" envDefault:"jorge"`

	// Directory the cached credential documents live in. Defaults to
	// the process working directory.
	CacheDir string `env:"SPOTKEEP_CACHE_DIR" envDefault:"."`

	// Path to the one-time secret store bootstrap file.
	BitwardenConfigPath string `env:"BITWARDEN_CONFIG_PATH" envDefault:"bitwarden_config.json"`

	// Redirect URI registered with the Spotify application.
	RedirectURI string `env:"SPOTIFY_REDIRECT_URI" envDefault:"http://localhost:8080"`

	// Scope requested during authorization. Empty means the default
	// capability list.
	Scope string `env:"SPOTIFY_SCOPE"`

	// Environment controls log format.
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

// warnInsecureFile checks whether a credential-bearing file has overly
// permissive permissions. On Unix systems, group or world readable
// files risk exposing the machine token to other users.
func warnInsecureFile(path string) {
	if runtime.GOOS == "windows" {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return // file does not exist, nothing to check
	}

	mode := info.Mode().Perm()
	if mode&0o077 != 0 {
		log.Printf("WARNING: %s has insecure permissions %04o; recommended 0600", path, mode)
	}
}

// Load reads configuration from environment variables. It first
// attempts to load a .env file if present, then parses env vars.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Scope == "" {
		cfg.Scope = spotify.DefaultScope
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	// The cache directory is resolved to an absolute path at startup so
	// later chdir calls cannot silently repoint the credential cache.
	absDir, err := filepath.Abs(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("resolving cache dir to absolute path: %w", err)
	}

	cfg.CacheDir = absDir

	warnInsecureFile(cfg.BitwardenConfigPath)

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("SPOTIFY_USER_ID must not be empty")
	}

	if c.BitwardenConfigPath == "" {
		return fmt.Errorf("BITWARDEN_CONFIG_PATH must not be empty")
	}

	u, err := url.Parse(c.RedirectURI)
	if err != nil || u.Scheme == "" {
		return fmt.Errorf("SPOTIFY_REDIRECT_URI is not a valid absolute URL: %q", c.RedirectURI)
	}

	return nil
}

// IsProduction returns true when the environment is set to production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
