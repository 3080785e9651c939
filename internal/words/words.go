// internal/words/words.go
//
// Word list loading for the game.
//
// Responsibilities:
//   - Load candidate secret words from a text file, a SQLite database, or the
//     embedded default list.
//   - Normalise to lowercase and keep only words made of a–z.
//   - Report missing, unreadable or empty sources as *LoadError.
//
// Text format:
//   Whitespace-separated words, any number per line.
//   Lines starting with "#" are comments.
//
// Source selection (Load):
//   1. Empty path               → embedded assets/words.txt.
//   2. .db/.sqlite/.sqlite3     → SQLite table (see LoadDB).
//   3. Anything else            → text file.
//
// The loaded list is returned to the caller and passed explicitly to the
// selector; this package keeps no global state.

package words

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

// EmbeddedSource is the Source name reported for the built-in list.
const EmbeddedSource = "embedded:" + assets.WordsName

// ErrEmpty is the cause of a LoadError when a source holds no usable words.
var ErrEmpty = errors.New("word list is empty")

// LoadError reports a word list that could not be loaded.
type LoadError struct {
	Source string // file path, db path or EmbeddedSource
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("words: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load picks a source based on path and loads it.
// table is only used for SQLite sources.
func Load(ctx context.Context, path, table string) ([]string, error) {
	switch {
	case path == "":
		return LoadEmbedded()
	case isDBPath(path):
		return LoadDB(ctx, path, table)
	default:
		return LoadFile(path)
	}
}

// LoadFile reads a whitespace-separated word list from path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return parseSource(path, f)
}

// LoadEmbedded reads the default list compiled into the binary.
func LoadEmbedded() ([]string, error) {
	f, err := assets.OpenWords()
	if err != nil {
		return nil, &LoadError{Source: EmbeddedSource, Err: err}
	}
	defer f.Close()
	return parseSource(EmbeddedSource, f)
}

func parseSource(source string, r io.Reader) ([]string, error) {
	out, err := Parse(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	if len(out) == 0 {
		return nil, &LoadError{Source: source, Err: ErrEmpty}
	}
	return out, nil
}

// Parse extracts lowercase a–z words from r.
// Tokens containing anything else are skipped. An empty result is not an
// error here; loaders turn it into ErrEmpty.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	// a single-line list can be long
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			if w, ok := normalize(tok); ok {
				out = append(out, w)
			}
		}
	}
	return out, sc.Err()
}

// normalize lowercases s and reports whether it is a usable word.
func normalize(s string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(s))
	return w, w != "" && isAlpha(w)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

func isDBPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}
