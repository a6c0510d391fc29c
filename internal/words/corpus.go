// internal/words/corpus.go
//
// Word corpus backing random secret selection.
//
// Responsibilities:
//   - Stream a word list (file on disk or the embedded default) line by line.
//   - Pick one line uniformly at random in a single pass (reservoir sampling).
//   - Report line counts for diagnostics (Stats).
//
// Corpus format:
//   - Plain text, one candidate per line.
//   - Only the first whitespace-delimited token of a line is the word; anything
//     after it is ignored. Blank lines are not candidates.
//   - Case-insensitive; words come back upper-case.
//   - A last line without a trailing newline is still a candidate.
//
// Randomness:
//   - Each Corpus owns its generator, seeded once at construction.
//   - The generator is guarded by a mutex so one Corpus can serve
//     concurrent callers.

package words

import (
	"bufio"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/robalobadob/wordle/apps/wordle-cli/assets"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/game"
)

var (
	// ErrCorpusUnavailable means the word list could not be opened or read.
	ErrCorpusUnavailable = errors.New("words: corpus unavailable")
	// ErrCorpusEmpty means the word list has no usable lines.
	ErrCorpusEmpty = errors.New("words: corpus is empty")
)

// Source names a word list and knows how to open it for reading.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource reads the word list at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// EmbeddedSource reads the default word list compiled into the binary.
func EmbeddedSource() Source {
	return Source{Name: "embedded:" + assets.VocabularyName, Open: assets.OpenVocabulary}
}

// ReaderSource serves a fixed string; handy for tests and piped input.
func ReaderSource(name, text string) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(text)), nil },
	}
}

// Option configures a Corpus.
type Option func(*Corpus)

// WithSeed seeds the corpus generator deterministically.
func WithSeed(seed uint64) Option {
	return func(c *Corpus) { c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithRand hands the corpus an existing generator. The corpus takes ownership.
func WithRand(r *rand.Rand) Option {
	return func(c *Corpus) { c.rng = r }
}

// Corpus samples words from a Source.
type Corpus struct {
	src Source

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewCorpus builds a corpus over src. Without WithSeed or WithRand the
// generator is seeded from crypto/rand.
func NewCorpus(src Source, opts ...Option) *Corpus {
	c := &Corpus{src: src}
	for _, o := range opts {
		o(c)
	}
	if c.rng == nil {
		var b [16]byte
		_, _ = crand.Read(b[:])
		c.rng = rand.New(rand.NewPCG(binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:])))
	}
	return c
}

// Name identifies the backing word list.
func (c *Corpus) Name() string { return c.src.Name }

// SampleUniform returns the first token of one usable line, chosen with
// equal probability among all usable lines, upper-cased.
//
// The k-th usable line replaces the current pick with probability 1/k, so the
// list is read once and never held in memory.
func (c *Corpus) SampleUniform() (game.Word, error) {
	var (
		pick string
		k    int
	)
	err := c.scan(func(token string) {
		k++
		if c.intN(k) == 0 {
			pick = token
		}
	})
	if err != nil {
		return "", err
	}
	if k == 0 {
		return "", fmt.Errorf("%w: %s", ErrCorpusEmpty, c.src.Name)
	}
	return game.NewWord(pick), nil
}

// Stats reports line counts of the backing list.
type Stats struct {
	Name   string `json:"name"`
	Lines  int    `json:"lines"`
	Usable int    `json:"usable"`
}

// Stats streams the list once and counts total and usable lines.
func (c *Corpus) Stats() (Stats, error) {
	st := Stats{Name: c.src.Name}
	err := c.scanLines(func(line string) {
		st.Lines++
		if firstToken(line) != "" {
			st.Usable++
		}
	})
	return st, err
}

func (c *Corpus) intN(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.IntN(n)
}

// scan calls fn with the first token of every usable line.
func (c *Corpus) scan(fn func(token string)) error {
	return c.scanLines(func(line string) {
		if tok := firstToken(line); tok != "" {
			fn(tok)
		}
	})
}

// scanLines calls fn once per line, including an unterminated last line.
// Lines are read with bufio.Reader so there is no length limit.
func (c *Corpus) scanLines(fn func(line string)) error {
	if c.src.Open == nil {
		return fmt.Errorf("%w: %s: no opener", ErrCorpusUnavailable, c.src.Name)
	}
	rc, err := c.src.Open()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCorpusUnavailable, err)
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			fn(line)
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: read %s: %w", ErrCorpusUnavailable, c.src.Name, err)
		}
	}
}

// firstToken returns the first whitespace-delimited field of line, or "".
func firstToken(line string) string {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	if i := strings.IndexFunc(line, unicode.IsSpace); i >= 0 {
		return line[:i]
	}
	return line
}
