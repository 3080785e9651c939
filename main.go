package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/console"
	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.Logging, os.Stderr)

	src := source(cfg.Words.File)
	fmt.Printf("Loading word list from %s...\n", src)
	list, err := words.Load(context.Background(), cfg.Words.File, cfg.Words.Table)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	fmt.Println("  ", len(list), "words loaded.")
	log.Debug().Str("source", src).Int("count", len(list)).Msg("word list loaded")

	secret, err := pick(cfg, list, time.Now())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to choose a word")
	}

	state, err := console.NewSession(os.Stdin, os.Stdout, log.Logger).Run(game.New(secret))
	if errors.Is(err, console.ErrInputClosed) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal().Err(err).Str("state", string(state)).Msg("session failed")
	}
}

// setupLogging applies LOG_LEVEL and LOG_FORMAT to the global logger.
func setupLogging(c config.LoggingConfig, w io.Writer) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if c.Format == "json" {
		log.Logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
}

// pick chooses the secret word: the word of the day for now when a salt is
// configured, otherwise a uniform random word.
func pick(cfg *config.Config, list []string, now time.Time) (string, error) {
	if cfg.Daily() {
		return words.ChooseDaily(list, now, cfg.Words.DailySalt)
	}
	return words.Choose(list)
}

func source(path string) string {
	if path == "" {
		return words.EmbeddedSource
	}
	return path
}
