// internal/game/engine.go
//
// Core game engine for a single Hangman session.
// Responsibilities:
//   - Create new games with MaxMisses guesses and an empty letter set.
//   - Normalise and classify guesses (see RecordGuess).
//   - Track state transitions: in_progress → won/lost.
//
// Notes:
//   - The secret word is supplied by the caller (see the words package).
//   - Rejected input is still appended to History.
package game

import (
	"strings"

	"github.com/google/uuid"
)

// New constructs a new game for secret.
func New(secret string) *Game {
	return &Game{
		ID:        uuid.NewString(),
		Secret:    strings.ToLower(secret),
		Guessed:   NewLetterSet(),
		Remaining: MaxMisses,
		History:   []string{},
		State:     StateInProgress,
	}
}

// Guess lowercases and trims raw, records it and applies it to the game.
// Returns the feedback for the guess, or ErrGameOver once the game is won or lost.
//
// State transitions:
//   - If Remaining reaches 0 → StateLost.
//   - Else if every letter of Secret is guessed → StateWon.
func (g *Game) Guess(raw string) (Feedback, error) {
	if g.Finished() {
		return "", ErrGameOver
	}
	guess := strings.ToLower(strings.TrimSpace(raw))
	g.History = append(g.History, guess)

	var fb Feedback
	g.Guessed, g.Remaining, fb = RecordGuess(g.Secret, g.Guessed, g.Remaining, guess)

	switch {
	case g.Remaining == 0:
		g.State = StateLost
	case IsWordGuessed(g.Secret, g.Guessed):
		g.State = StateWon
	}
	return fb, nil
}

// Finished reports whether the game reached a terminal state.
func (g *Game) Finished() bool { return g.State != StateInProgress }

// Revealed is the current reveal string for the secret word.
func (g *Game) Revealed() string { return GuessedWord(g.Secret, g.Guessed) }

// Available lists the letters not yet guessed.
func (g *Game) Available() string { return AvailableLetters(g.Guessed) }
