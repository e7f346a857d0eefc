// Package config loads scramble's optional TOML configuration file, holding
// a token cache directory setting and the settings the HTTP execution
// service (cmd/scrambled) needs: bind address, database selection, and
// admin credentials. Only cmd/scrambled loads this file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DatabaseKind selects which dao implementation cmd/scrambled persists run
// records with.
type DatabaseKind string

const (
	DatabaseInMemory DatabaseKind = "memory"
	DatabaseSQLite   DatabaseKind = "sqlite"
)

// Config is the root of scramble.toml.
type Config struct {
	// CacheDir is read from cache_dir. Nothing consults it: cmd/scramble
	// does not load this file, and Engine.RunFile always keeps its ".sxc"
	// token cache next to the source file.
	CacheDir string `toml:"cache_dir"`

	Server Server `toml:"server"`
}

// Server holds cmd/scrambled's settings.
type Server struct {
	BindAddress string       `toml:"bind_address"`
	Database    DatabaseKind `toml:"database"`
	DBFile      string       `toml:"db_file"`

	// AdminUser/AdminPasswordHash authenticate the single admin account
	// POST /api/v1/login issues a token for. The hash is a bcrypt hash, not
	// a plaintext password, so the config file itself is safe to commit.
	AdminUser         string `toml:"admin_user"`
	AdminPasswordHash string `toml:"admin_password_hash"`

	// JWTSecret signs the bearer tokens issued at login.
	JWTSecret string `toml:"jwt_secret"`
}

// Default returns the configuration scramble runs with when no config file
// is found.
func Default() Config {
	return Config{
		Server: Server{
			BindAddress: ":8080",
			Database:    DatabaseInMemory,
		},
	}
}

// Load reads and parses the TOML file at path, starting from Default() so
// any field the file omits keeps its default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}
