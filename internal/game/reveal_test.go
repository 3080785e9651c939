package game

import (
	"testing"
	"testing/quick"
)

// The placeholder is a single "_" so the reveal string always has exactly one
// character per letter of the secret word. The older two-character "_ " form
// made revealed and hidden positions different widths.
func TestGuessedWord(t *testing.T) {
	tests := []struct {
		secret  string
		guessed string
		want    string
	}{
		{"cat", "", "___"},
		{"cat", "a", "_a_"},
		{"cat", "tca", "cat"},
		{"apple", "p", "_pp__"},
		{"apple", "xyz", "_____"},
	}
	for _, tt := range tests {
		got := GuessedWord(tt.secret, NewLetterSet([]rune(tt.guessed)...))
		if got != tt.want {
			t.Errorf("GuessedWord(%q, %q) = %q, want %q", tt.secret, tt.guessed, got, tt.want)
		}
	}
}

func TestGuessedWord_Property(t *testing.T) {
	f := func(secretBytes, guessedBytes []byte) bool {
		secret := toLetters(secretBytes)
		set := NewLetterSet([]rune(toLetters(guessedBytes))...)
		got := GuessedWord(secret, set)
		if len(got) != len(secret) {
			return false
		}
		for i := range got {
			if got[i] == byte(Placeholder) {
				if set.Has(rune(secret[i])) {
					return false
				}
				continue
			}
			if got[i] != secret[i] || !set.Has(rune(got[i])) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestGuessedWord_OrderIndependent(t *testing.T) {
	a := GuessedWord("banana", NewLetterSet('n', 'b'))
	b := GuessedWord("banana", NewLetterSet('b', 'n'))
	if a != b {
		t.Errorf("%q != %q", a, b)
	}
}

func TestAvailableLetters(t *testing.T) {
	if got := AvailableLetters(NewLetterSet()); got != "abcdefghijklmnopqrstuvwxyz" {
		t.Errorf("empty set: got %q", got)
	}
	got := AvailableLetters(NewLetterSet('a', 'z'))
	if got != "bcdefghijklmnopqrstuvwxy" {
		t.Errorf("{a,z}: got %q", got)
	}
	if len(got) != 24 {
		t.Errorf("{a,z}: len %d, want 24", len(got))
	}
	if got := AvailableLetters(NewLetterSet([]rune("abcdefghijklmnopqrstuvwxyz")...)); got != "" {
		t.Errorf("full set: got %q", got)
	}
}
