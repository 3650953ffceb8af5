package config

import (
	"blackjack-table/internal/util"
	"errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"io"
	"io/fs"
	"os"
)

// Config provides configuration for the blackjack table
type Config struct {
	loaded bool
	Log    LogConfig  `yaml:"log"`
	Game   GameConfig `yaml:"game"`
}

// LogConfig configures logrus
type LogConfig struct {
	Level  string `yaml:"level" envconfig:"level"`
	Format string `yaml:"format" envconfig:"format"`
}

// GameConfig configures every game played
type GameConfig struct {
	Seed               int64 `yaml:"seed" envconfig:"seed"`
	CryptoShuffle      bool  `yaml:"cryptoShuffle" envconfig:"crypto_shuffle"`
	FreshDeckEachRound bool  `yaml:"freshDeckEachRound" envconfig:"fresh_deck_each_round"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warning",
			Format: "text",
		},
		Game: GameConfig{
			FreshDeckEachRound: true,
		},
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are read from the defaults, then a .env file, then the yaml file, then the environment.
// The .env and yaml files are optional.
func Load() error {
	if err := godotenv.Load(util.Getenv("BJ_ENV_FILE", ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := DefaultConfig()
	if err := loadFile(util.Getenv("BJ_CONFIG_FILE", "config.yaml"), &cfg); err != nil {
		return err
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func loadFile(configFile string, cfg *Config) error {
	file, err := os.Open(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && err != io.EOF {
		return err
	}

	return nil
}
