// internal/config/config.go
//
// Process configuration read from the environment (and an optional .env).
// Every field has a default, so an empty environment yields a playable game.

package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/robalobadob/wordscramble/internal/normalize"
)

// Dictionary backends selectable with DICTIONARY_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config is the full process configuration.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Words    Words
	Dict     Dictionary
	Rules    Rules
}

// Words configures the root word source.
type Words struct {
	StartFile string `env:"WORDS_START_FILE" env-description:"newline-delimited root word list; embedded list when empty"`
	Fallback  string `env:"WORDS_FALLBACK" env-default:"silkworm"`
}

// Dictionary selects and configures the spell-check backend.
type Dictionary struct {
	Backend string `env:"DICTIONARY_BACKEND" env-default:"memory"`
	File    string `env:"DICTIONARY_FILE" env-description:"newline-delimited word list; embedded list when empty"`
	DSN     string `env:"DICTIONARY_DSN" env-default:"./data/dictionary.db"`
	Locale  string `env:"DICTIONARY_LOCALE" env-default:"en"`
}

// Rules tunes which submissions are playable.
type Rules struct {
	MinWordLength int  `env:"MIN_WORD_LENGTH" env-default:"3"`
	AllowRootWord bool `env:"ALLOW_ROOT_WORD" env-default:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Dict.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown DICTIONARY_BACKEND %q", c.Dict.Backend)
	}
	if normalize.Locale(c.Dict.Locale) == normalize.Undetermined {
		return fmt.Errorf("config: invalid DICTIONARY_LOCALE %q", c.Dict.Locale)
	}
	if c.Rules.MinWordLength < 0 {
		return fmt.Errorf("config: MIN_WORD_LENGTH must be >= 0, got %d", c.Rules.MinWordLength)
	}
	return nil
}
