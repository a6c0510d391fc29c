// internal/game/session.go
//
// State machine for a single game against one secret word.
// Responsibilities:
//   - Draw the secret once from a Sampler (Start) or accept a fixed one (NewSession).
//   - Validate and apply guesses, keeping an append-only history.
//   - Track state transitions: awaiting_guess → won/lost.
//
// A Session is owned by one control loop and is not safe for concurrent use.
// Observers get copies through Snapshot.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// DefaultMaxAttempts is the attempt budget when none is configured.
const DefaultMaxAttempts = 6

// Sampler supplies one uniformly random secret word.
type Sampler interface {
	SampleUniform() (Word, error)
}

// Session holds the state of a single game.
type Session struct {
	id           string
	secret       Word
	secretLen    int
	maxAttempts  int
	remaining    int
	history      []GuessRecord
	lettersTried []rune
	seen         map[rune]struct{}
	state        State
}

// NewSession starts a game against a fixed secret.
func NewSession(secret Word, maxAttempts int) (*Session, error) {
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxAttempts, maxAttempts)
	}
	secret = NewWord(string(secret))
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Session{
		id:          randomID(),
		secret:      secret,
		secretLen:   secret.Len(),
		maxAttempts: maxAttempts,
		remaining:   maxAttempts,
		seen:        make(map[rune]struct{}),
		state:       StateAwaitingGuess,
	}, nil
}

// Start draws a secret from c and starts a game against it.
// Corpus failures are returned wrapped; the caller decides whether to retry.
func Start(c Sampler, maxAttempts int) (*Session, error) {
	if maxAttempts <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxAttempts, maxAttempts)
	}
	secret, err := c.SampleUniform()
	if err != nil {
		return nil, fmt.Errorf("draw secret: %w", err)
	}
	return NewSession(secret, maxAttempts)
}

// SubmitGuess validates and scores a guess, mutating the session.
// Returns the marks, the new state, or an error.
//
// Validation rules:
//   - Session must not be finished (ErrInvalidStateTransition).
//   - Guess must have as many letters as the secret (ErrLengthMismatch).
//     A rejected guess costs no attempt.
//
// State transitions:
//   - All marks Correct → won, regardless of attempts left.
//   - Else attempts exhausted → lost.
func (s *Session) SubmitGuess(raw string) (Feedback, State, error) {
	if s.state.Terminal() {
		return nil, s.state, ErrInvalidStateTransition
	}
	guess := NewWord(raw)
	if n := guess.Len(); n != s.secretLen {
		return nil, s.state, fmt.Errorf("%w: want %d letters, got %d", ErrLengthMismatch, s.secretLen, n)
	}

	fb, err := Classify(s.secret, guess)
	if err != nil {
		return nil, s.state, err
	}
	s.history = append(s.history, GuessRecord{Guess: guess, Feedback: fb})
	s.remaining--
	for _, r := range string(guess) {
		if _, ok := s.seen[r]; !ok {
			s.seen[r] = struct{}{}
			s.lettersTried = append(s.lettersTried, r)
		}
	}

	switch {
	case fb.Solved():
		s.state = StateWon
	case s.remaining == 0:
		s.state = StateLost
	}
	return fb, s.state, nil
}

// ID is the random hex identifier used to correlate logs and snapshots.
func (s *Session) ID() string { return s.id }

// State reports where the session is in awaiting_guess → won/lost.
func (s *Session) State() State { return s.state }

// AttemptsRemaining is how many more accepted guesses the session allows.
func (s *Session) AttemptsRemaining() int { return s.remaining }

// MaxAttempts is the attempt budget the session started with.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// WordLength is the secret's length in letters; every guess must match it.
func (s *Session) WordLength() int { return s.secretLen }

// LettersTried lists every letter guessed so far, in first-use order.
func (s *Session) LettersTried() string { return string(s.lettersTried) }

// Secret reveals the secret once the session is finished; before that it is empty.
func (s *Session) Secret() Word {
	if !s.state.Terminal() {
		return ""
	}
	return s.secret
}

// History returns a copy of the guesses made so far.
func (s *Session) History() []GuessRecord {
	out := make([]GuessRecord, len(s.history))
	for i, rec := range s.history {
		out[i] = GuessRecord{Guess: rec.Guess, Feedback: append(Feedback(nil), rec.Feedback...)}
	}
	return out
}

// Snapshot is a detached, read-only view of a session.
type Snapshot struct {
	ID                string        `json:"id"`
	State             State         `json:"state"`
	WordLength        int           `json:"wordLength"`
	MaxAttempts       int           `json:"maxAttempts"`
	AttemptsRemaining int           `json:"attemptsRemaining"`
	LettersTried      string        `json:"lettersTried"`
	History           []GuessRecord `json:"history"`
	Secret            Word          `json:"secret,omitempty"` // set only when finished
}

// Snapshot copies the session's observable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:                s.id,
		State:             s.state,
		WordLength:        s.secretLen,
		MaxAttempts:       s.maxAttempts,
		AttemptsRemaining: s.remaining,
		LettersTried:      s.LettersTried(),
		History:           s.History(),
		Secret:            s.Secret(),
	}
}

// String renders a one-line summary for logs.
func (s Snapshot) String() string {
	return fmt.Sprintf("%s %s %d/%d", s.ID, s.State, s.MaxAttempts-s.AttemptsRemaining, s.MaxAttempts)
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
