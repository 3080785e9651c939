package words

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"math/big"
	"strings"
	"time"
)

// ErrNoWords is returned when choosing from an empty list.
var ErrNoWords = errors.New("words: no words to choose from")

// Choose returns a uniformly random word from list, lowercased.
func Choose(list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrNoWords
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", err
	}
	return strings.ToLower(list[n.Int64()]), nil
}

// ChooseDaily returns the word of the day for t: every call with the same
// UTC date, salt and list yields the same word.
func ChooseDaily(list []string, t time.Time, salt string) (string, error) {
	if len(list) == 0 {
		return "", ErrNoWords
	}
	return strings.ToLower(list[dayIndex(DayKey(t), salt, len(list))]), nil
}

// DayKey is the UTC calendar date of t, as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// dayIndex keys an HMAC-SHA256 with salt, signs day and reduces the leading
// 64 bits of the digest into [0, n).
func dayIndex(day, salt string, n int) int {
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(day))
	digest := mac.Sum(nil)
	return int(binary.BigEndian.Uint64(digest) % uint64(n))
}
