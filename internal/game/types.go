// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - Word:        an upper-case candidate or secret.
//   - Mark:        per-letter result of a guess (correct/present/absent).
//   - Feedback:    the ordered marks for one guess.
//   - GuessRecord: one entry of a session's append-only history.
//   - State:       the session state machine's states.

package game

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Word is an ordered sequence of upper-case letters.
type Word string

// NewWord trims and upper-cases raw input.
func NewWord(raw string) Word {
	return Word(strings.ToUpper(strings.TrimSpace(raw)))
}

// Len is the length of w in letters, not bytes.
func (w Word) Len() int { return utf8.RuneCountInString(string(w)) }

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the secret at this position.
//   - "present": letter is in the secret at another, unclaimed position.
//   - "absent":  letter is not in the secret (or every copy is already claimed).
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

// Feedback is the ordered sequence of marks for one guess.
type Feedback []Mark

// Solved reports whether every mark is MarkCorrect.
func (f Feedback) Solved() bool {
	if len(f) == 0 {
		return false
	}
	for _, m := range f {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// GuessRecord pairs a guess with the feedback it produced.
type GuessRecord struct {
	Guess    Word     `json:"guess"`
	Feedback Feedback `json:"feedback"`
}

// State is the coarse state of a session.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateWon           State = "won"
	StateLost          State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

var (
	// ErrInvalidLength is returned by Classify when secret and guess differ in length.
	ErrInvalidLength = errors.New("game: secret and guess lengths differ")
	// ErrLengthMismatch is returned by SubmitGuess for a guess of the wrong length.
	// No attempt is consumed.
	ErrLengthMismatch = errors.New("game: guess length does not match secret")
	// ErrInvalidStateTransition is returned by SubmitGuess on a finished session.
	ErrInvalidStateTransition = errors.New("game: session is finished")
	// ErrInvalidMaxAttempts rejects a non-positive attempt budget.
	ErrInvalidMaxAttempts = errors.New("game: max attempts must be positive")
	// ErrEmptySecret rejects a session without a secret.
	ErrEmptySecret = errors.New("game: secret is empty")
)
