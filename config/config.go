// Package config loads settings from defaults, an optional YAML file and
// SONGS_* environment variables, in increasing order of precedence.
//
// Environment variables name a section and a key, split at the first
// underscore: SONGS_DATABASE_PATH sets database.path and
// SONGS_RANKING_MIN_DURATION sets ranking.min_duration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amonks/songs/ingest"
	"github.com/amonks/songs/logging"
	"github.com/amonks/songs/ranking"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "SONGS_"

	// PathEnv names a config file to use instead of DefaultPath.
	PathEnv     = "SONGS_CONFIG"
	DefaultPath = "songs.yaml"
)

type Config struct {
	Database Database        `koanf:"database"`
	Dataset  Dataset         `koanf:"dataset"`
	Filter   ingest.Filter   `koanf:"filter"`
	Ranking  ranking.Weights `koanf:"ranking"`
	Charts   Charts          `koanf:"charts"`
	Server   Server          `koanf:"server"`
	Export   Export          `koanf:"export"`
	Logging  logging.Config  `koanf:"logging"`
}

type Database struct {
	Path string `koanf:"path" validate:"required"`
}

type Dataset struct {
	// CSV file read by `songs load`.
	Path string `koanf:"path" validate:"required"`
}

type Charts struct {
	Dir    string `koanf:"dir" validate:"required"`
	Format string `koanf:"format" validate:"oneof=png svg"`

	// Pixels; zero picks a default.
	Width  int `koanf:"width" validate:"gte=0,lte=8192"`
	Height int `koanf:"height" validate:"gte=0,lte=8192"`
}

type Server struct {
	Addr string `koanf:"addr" validate:"required"`
}

type Export struct {
	// Reports rendered at once.
	Workers int    `koanf:"workers" validate:"gte=1,lte=64"`
	Dir     string `koanf:"dir" validate:"required"`
}

func Default() *Config {
	return &Config{
		Database: Database{Path: "songs.db"},
		Dataset:  Dataset{Path: "songs.csv"},
		Filter:   ingest.DefaultFilter(),
		Ranking:  ranking.DefaultWeights(),
		Charts:   Charts{Dir: "charts", Format: "png", Width: 1024, Height: 512},
		Server:   Server{Addr: "localhost:8080"},
		Export:   Export{Workers: 4, Dir: "export"},
		Logging:  logging.Config{Level: "info", Format: "console"},
	}
}

// Load reads the config file at path, or, if path is empty, the file named
// by SONGS_CONFIG or DefaultPath. A missing default file is fine; a missing
// file that was asked for is not.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading config defaults: %w", err)
	}

	path, required := configPath(path)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error loading config file '%s': %w", path, err)
		}
	} else if required || !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading config file '%s': %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("error loading config from environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configPath(path string) (string, bool) {
	if path != "" {
		return path, true
	}
	if path := os.Getenv(PathEnv); path != "" {
		return path, true
	}
	return DefaultPath, false
}

// envKey maps SONGS_SECTION_SOME_KEY to section.some_key. Variables
// without a key, like SONGS_CONFIG, are skipped.
func envKey(name string) string {
	rest, ok := strings.CutPrefix(name, EnvPrefix)
	if !ok {
		return ""
	}
	section, key, ok := strings.Cut(strings.ToLower(rest), "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return err
	}
	return c.Ranking.Validate()
}
