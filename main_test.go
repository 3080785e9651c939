package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/words"
)

// keepLogger restores the global logger and level after a test changes them.
func keepLogger(t *testing.T) {
	t.Helper()
	prev, lvl := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(lvl)
	})
}

func TestSetupLogging_JSON(t *testing.T) {
	keepLogger(t)
	var buf bytes.Buffer
	setupLogging(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)

	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Errorf("level %v, want debug", zerolog.GlobalLevel())
	}
	log.Debug().Str("k", "v").Msg("hello")
	out := buf.String()
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"k":"v"`) || !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("json output %q", out)
	}
}

func TestSetupLogging_ConsoleAndLevel(t *testing.T) {
	keepLogger(t)
	var buf bytes.Buffer
	setupLogging(config.LoggingConfig{Level: "warn", Format: "console"}, &buf)

	log.Info().Msg("quiet")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	log.Warn().Msg("loud")
	if strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "loud") {
		t.Errorf("console output %q", buf.String())
	}
}

func TestSetupLogging_BadLevelKeepsCurrent(t *testing.T) {
	keepLogger(t)
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	setupLogging(config.LoggingConfig{Level: "loudest", Format: "json"}, &bytes.Buffer{})
	if zerolog.GlobalLevel() != zerolog.ErrorLevel {
		t.Errorf("level %v, want unchanged error", zerolog.GlobalLevel())
	}
}

func TestPick(t *testing.T) {
	list := []string{"ant", "bee", "cow", "dog", "eel"}
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	daily := &config.Config{Words: config.WordsConfig{DailySalt: "pepper"}}
	got, err := pick(daily, list, now)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := words.ChooseDaily(list, now, "pepper")
	if got != want {
		t.Errorf("daily pick %q, want %q", got, want)
	}

	random := &config.Config{}
	got, err = pick(random, list, now)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(strings.Join(list, " "), got) {
		t.Errorf("random pick %q not in list", got)
	}

	if _, err := pick(random, nil, now); !errors.Is(err, words.ErrNoWords) {
		t.Errorf("empty list: err %v, want ErrNoWords", err)
	}
}

func TestSource(t *testing.T) {
	if got := source(""); got != words.EmbeddedSource {
		t.Errorf("empty path: %q, want %q", got, words.EmbeddedSource)
	}
	if got := source("/srv/words.txt"); got != "/srv/words.txt" {
		t.Errorf("file path: %q", got)
	}
}
