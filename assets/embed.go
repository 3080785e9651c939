// assets/embed.go
//
// Embedded default word list, used when no external list is configured.

package assets

import (
	"embed"
	"io"
)

//go:embed words.txt
var FS embed.FS

// WordsName is the embedded word list file name.
const WordsName = "words.txt"

// OpenWords opens the embedded default word list. Caller closes it.
func OpenWords() (io.ReadCloser, error) {
	return FS.Open(WordsName)
}
