package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Words   WordsConfig
	Logging LoggingConfig
}

// WordsConfig controls where the secret word comes from
type WordsConfig struct {
	File      string // text or SQLite path; empty means the embedded list
	Table     string // SQLite table with a "word" column
	DailySalt string // non-empty switches to the deterministic word of the day
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "console" or "json"
}

// Load reads an optional .env file, then the environment, with defaults.
// A missing .env is not an error.
func Load() *Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		Words: WordsConfig{
			File:      getEnv("HANGMAN_WORDS_FILE", ""),
			Table:     getEnv("HANGMAN_WORDS_TABLE", "words"),
			DailySalt: getEnv("HANGMAN_DAILY_SALT", ""),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "console")),
		},
	}
}

// Daily reports whether the word of the day mode is enabled
func (c *Config) Daily() bool {
	return c.Words.DailySalt != ""
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
