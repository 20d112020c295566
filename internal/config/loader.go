// internal/config/loader.go
//
// Configuration loader.
//
/*
Context
--------
`Load()` builds one immutable `Config` struct from three layers (highest
precedence last):

  1. Optional `conf/.env` dotenv file.
  2. `conf/global.yaml`.
  3. Environment variables prefixed `PORTFOLIO_`, where `__` maps to “.”
     (e.g., `PORTFOLIO_AUTH__SECRET → auth.secret`).

After merging, the tree is unmarshalled into strongly-typed structs,
`vault:` references are resolved, the runtime root path is filled in, the
result is validated, and the pointer is cached in an `atomic.Pointer` for
lock-free reads.

Instrumentation uses the global sugared logger (`zap.S()`) so early boot
issues surface on the bootstrap console before the file logger exists.
*/
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"
	"go.uber.org/zap"
)

var current atomic.Pointer[Config]

/*──────────────────────────── root discovery ───────────────────────────────*/

// rootDir resolves PORTFOLIO_ROOT or climbs directories until
// conf/global.yaml is found.  Falls back to the executable heuristic for
// the production layout (<root>/bin/web).
func rootDir() string {
	if r := os.Getenv("PORTFOLIO_ROOT"); r != "" {
		return r
	}

	wd, _ := os.Getwd()
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "conf", "global.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached filesystem root
			break
		}
		dir = parent
	}

	exe, _ := os.Executable()
	if filepath.Base(filepath.Dir(exe)) == "bin" {
		return filepath.Dir(filepath.Dir(exe))
	}
	return wd
}

/*─────────────────────────────── loader ───────────────────────────────────*/

// Load reads .env, YAML, env overrides, resolves secrets, validates, and
// caches the Config.
func Load(ctx context.Context) (*Config, error) {
	root := rootDir()
	zap.S().Debugw("config root resolved", "root", root)

	// .env (optional, no error if missing)
	_ = godotenv.Load(filepath.Join(root, "conf", ".env"))

	k := koanf.New(".")

	yamlPath := filepath.Join(root, "conf", "global.yaml")
	if err := k.Load(file.Provider(yamlPath), yaml.Parser()); err != nil {
		zap.S().Errorw("config yaml load failed", "file", yamlPath, "err", err)
		return nil, err
	}

	// Env overrides: PORTFOLIO_AUTH__SECRET → auth.secret
	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, "PORTFOLIO_"), "__", "."))
	}), nil); err != nil {
		zap.S().Errorw("config env overlay failed", "err", err)
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		zap.S().Errorw("config unmarshal failed", "err", err)
		return nil, err
	}

	if err := resolveSecrets(ctx, &cfg); err != nil {
		zap.S().Errorw("config secret resolution failed", "err", err)
		return nil, err
	}

	cfg.Paths.Root = root
	if !filepath.IsAbs(cfg.Storage.DataFile) {
		cfg.Storage.DataFile = filepath.Join(root, cfg.Storage.DataFile)
	}
	if cfg.GeoIP.Database != "" && !filepath.IsAbs(cfg.GeoIP.Database) {
		cfg.GeoIP.Database = filepath.Join(root, cfg.GeoIP.Database)
	}

	if err := validateStruct(&cfg); err != nil {
		zap.S().Errorw("config validation failed", "err", err)
		return nil, err
	}

	current.Store(&cfg)
	zap.S().Infow("config loaded",
		"listen_addr", cfg.HTTP.ListenAddr,
		"data_file", cfg.Storage.DataFile,
		"remote", cfg.Storage.RemoteDSN != "",
		"root", cfg.Paths.Root,
	)
	return &cfg, nil
}

/*──────────────────────────── helpers ─────────────────────────────────────*/

// Get returns the last loaded Config, or nil before the first Load.
func Get() *Config { return current.Load() }
