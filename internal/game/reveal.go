package game

import "strings"

// Placeholder marks an unrevealed position in GuessedWord.
// It is one character wide, so the reveal string lines up with the secret.
const Placeholder = '_'

// GuessedWord renders secret with every letter not in guessed replaced by
// Placeholder. The result depends only on set membership, not guess order.
func GuessedWord(secret string, guessed LetterSet) string {
	var b strings.Builder
	b.Grow(len(secret))
	for _, r := range secret {
		if guessed.Has(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// AvailableLetters returns the alphabet minus guessed, in alphabetical order.
func AvailableLetters(guessed LetterSet) string {
	var b strings.Builder
	b.Grow(len(alphabet))
	for _, r := range alphabet {
		if !guessed.Has(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
