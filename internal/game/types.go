// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - Feedback: classification of a single guess (invalid/repeated/hit/miss).
//   - State: coarse lifecycle of a game (in_progress → won|lost).
//   - Game: state for a single in-progress or finished game.

package game

import "errors"

// MaxMisses is the number of incorrect guesses a player may make.
const MaxMisses = 8

// Feedback represents how a single guess was classified.
// Possible values:
//   - "invalid":  not exactly one letter a–z (no penalty, not recorded as guessed).
//   - "repeated": letter was already guessed (no penalty).
//   - "hit":      new letter that occurs in the secret word.
//   - "miss":     new letter absent from the secret word (costs one guess).
type Feedback string

const (
	FeedbackInvalid  Feedback = "invalid"
	FeedbackRepeated Feedback = "repeated"
	FeedbackHit      Feedback = "hit"
	FeedbackMiss     Feedback = "miss"
)

var (
	// ErrInvalidGuess is reported for input that is not a single letter.
	ErrInvalidGuess = errors.New("guess must be exactly one letter")
	// ErrRepeatedGuess is reported when the letter was already guessed.
	ErrRepeatedGuess = errors.New("letter already guessed")
	// ErrGameOver is returned when guessing on a won or lost game.
	ErrGameOver = errors.New("game finished")
)

// Err maps recoverable feedback to its error value.
// Hits and misses are normal outcomes and return nil.
func (f Feedback) Err() error {
	switch f {
	case FeedbackInvalid:
		return ErrInvalidGuess
	case FeedbackRepeated:
		return ErrRepeatedGuess
	}
	return nil
}

// State is the lifecycle of a game.
type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Game holds the state of a single Hangman session.
type Game struct {
	ID        string    // Unique game identifier (uuid), used in logs.
	Secret    string    // The secret word (always lowercase).
	Guessed   LetterSet // Letters accepted as guesses so far.
	Remaining int       // Incorrect guesses left before the game is lost.
	History   []string  // Every token entered, including rejected ones.
	State     State
}
