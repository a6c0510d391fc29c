// Package assets embeds the default vocabulary so the game runs without a
// corpus file on disk.
package assets

import (
	"embed"
	"io"
)

// VocabularyName is the embedded default word list, one word per line.
const VocabularyName = "wordle_vocab.txt"

//go:embed wordle_vocab.txt
var FS embed.FS

// OpenVocabulary opens the embedded default word list for streaming.
func OpenVocabulary() (io.ReadCloser, error) {
	return FS.Open(VocabularyName)
}
