// internal/game/tracker.go
//
// Guess classification and win detection.
// These are pure functions; Game (engine.go) threads their results through
// its own state.

package game

// IsWordGuessed reports whether every distinct letter of secret is in guessed.
func IsWordGuessed(secret string, guessed LetterSet) bool {
	for _, r := range secret {
		if !guessed.Has(r) {
			return false
		}
	}
	return true
}

// RecordGuess classifies guess against secret and returns the updated letter
// set and remaining count. guessed is never mutated.
//
// Classification order:
//  1. not exactly one letter a–z → FeedbackInvalid
//  2. letter already in guessed  → FeedbackRepeated
//  3. letter occurs in secret    → FeedbackHit
//  4. otherwise                  → FeedbackMiss, remaining decremented by one
//
// Only a miss changes remaining, and it never goes below zero.
func RecordGuess(secret string, guessed LetterSet, remaining int, guess string) (LetterSet, int, Feedback) {
	r, ok := singleLetter(guess)
	if !ok {
		return guessed, remaining, FeedbackInvalid
	}
	if guessed.Has(r) {
		return guessed, remaining, FeedbackRepeated
	}
	next := guessed.With(r)
	if containsRune(secret, r) {
		return next, remaining, FeedbackHit
	}
	if remaining > 0 {
		remaining--
	}
	return next, remaining, FeedbackMiss
}

// singleLetter returns the only rune of s when s is one lowercase letter.
func singleLetter(s string) (rune, bool) {
	rs := []rune(s)
	if len(rs) != 1 || !isLetter(rs[0]) {
		return 0, false
	}
	return rs[0], true
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
