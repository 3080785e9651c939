// internal/console/session.go
//
// Terminal game loop for a single Hangman game.
// Responsibilities:
//   - Print the round status (guesses left, available letters) and prompt.
//   - Read one line of input per round and hand it to game.Game.
//   - Print feedback with the current reveal string.
//   - Announce the win, or the loss together with the secret word.
//
// Notes:
//   - Player text goes to the session's writer; diagnostics go to the logger.
//   - Invalid and repeated guesses are reported and the loop continues.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/robalobadob/hangman/internal/game"
)

const separator = "-------------"

// maxGuessLen bounds how much of one input line is kept. Longer lines are
// still consumed in full, and the kept prefix is classified as an invalid guess.
const maxGuessLen = 64

// ErrInputClosed is returned when input ends before the game is decided.
var ErrInputClosed = errors.New("console: input closed before game ended")

// Session drives one game over a line-oriented reader and a writer.
type Session struct {
	in  *bufio.Reader
	out io.Writer
	log zerolog.Logger
	err error // first write error
}

// NewSession wires a session to in/out. Pass zerolog.Nop() to disable logging.
func NewSession(in io.Reader, out io.Writer, logger zerolog.Logger) *Session {
	return &Session{in: bufio.NewReader(in), out: out, log: logger}
}

// Run plays g until it is won or lost and returns the final state.
// Returns ErrInputClosed (state still in progress) if input runs out, or the
// underlying read/write error.
func (s *Session) Run(g *game.Game) (game.State, error) {
	log := s.log.With().Str("gameId", g.ID).Logger()
	log.Info().Int("length", len(g.Secret)).Msg("game started")

	s.printf("Welcome to the game Hangman!\n")
	s.printf("I am thinking of a word that is %d letters long.\n", len(g.Secret))

	for !g.Finished() {
		s.printf("%s\n", separator)
		s.printf("Guesses left: %d\n", g.Remaining)
		s.printf("Available letters: %s\n", g.Available())
		s.printf("Please guess a letter: ")
		if s.err != nil {
			return g.State, s.err
		}

		line, err := s.readLine()
		if err != nil {
			s.printf("\n")
			if errors.Is(err, io.EOF) {
				log.Warn().Msg("input closed mid-game")
				return g.State, ErrInputClosed
			}
			return g.State, fmt.Errorf("console: read guess: %w", err)
		}

		fb, err := g.Guess(line)
		if err != nil {
			return g.State, err
		}
		log.Debug().
			Err(fb.Err()).
			Str("guess", g.History[len(g.History)-1]).
			Str("feedback", string(fb)).
			Int("remaining", g.Remaining).
			Msg("guess")
		s.printf("%s %s\n", message(fb), g.Revealed())
	}

	switch g.State {
	case game.StateLost:
		s.printf("%s\n", separator)
		s.printf("Sorry, you ran out of guesses. The word was %s.\n", g.Secret)
	case game.StateWon:
		s.printf("%s\n", separator)
		s.printf("Congratulations, you won!\n")
	}
	log.Info().Str("state", string(g.State)).Int("remaining", g.Remaining).Msg("game finished")
	return g.State, s.err
}

// message is the player-facing text for a feedback value.
func message(fb game.Feedback) string {
	switch fb {
	case game.FeedbackInvalid:
		return "You may only guess one letter at a time:"
	case game.FeedbackRepeated:
		return "Oops! You've already guessed that letter:"
	case game.FeedbackHit:
		return "Good guess!"
	default:
		return "Sorry! That letter is not in my word:"
	}
}

// readLine returns the next input line without its line ending, keeping at
// most maxGuessLen bytes. The rest of an over-long line is discarded.
// A final line without a newline is returned before io.EOF.
func (s *Session) readLine() (string, error) {
	var b []byte
	for {
		chunk, more, err := s.in.ReadLine()
		if err != nil {
			return "", err
		}
		if room := maxGuessLen - len(b); room > 0 {
			if len(chunk) > room {
				chunk = chunk[:room]
			}
			b = append(b, chunk...)
		}
		if !more {
			return string(b), nil
		}
	}
}

// printf writes to out, keeping only the first error.
func (s *Session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, format, args...)
}
