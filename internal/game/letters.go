package game

import "sort"

// alphabet is the full set of guessable letters in order.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// LetterSet is a set of guessed letters.
// The zero value is not usable; construct with NewLetterSet.
type LetterSet map[rune]struct{}

// NewLetterSet returns a set holding the given letters.
func NewLetterSet(letters ...rune) LetterSet {
	s := make(LetterSet, len(letters))
	for _, r := range letters {
		s[r] = struct{}{}
	}
	return s
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	_, ok := s[r]
	return ok
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return len(s) }

// With returns a copy of s that also contains r. s is left untouched.
func (s LetterSet) With(r rune) LetterSet {
	out := make(LetterSet, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[r] = struct{}{}
	return out
}

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	rs := make([]rune, 0, len(s))
	for r := range s {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return string(rs)
}

// isLetter reports whether r is a lowercase ASCII letter.
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }
