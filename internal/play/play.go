// internal/play/play.go
//
// Interactive control loop for one game.
// Responsibilities:
//   - Start a session from a Sampler.
//   - Read one guess per whitespace-delimited token, submit it, redraw the board.
//   - Re-prompt on a wrong-length guess without spending an attempt.
//   - Publish a snapshot after every change for observers (diagnostics server).
//
// The loop ends when the session is won or lost, when input runs out, or
// when ctx is cancelled, even while waiting on a guess.

package play

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-cli/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/render"
)

// ErrAborted means the game ended before a win or loss.
var ErrAborted = errors.New("play: game aborted")

// Observer receives a copy of the session after every change.
type Observer interface {
	Publish(game.Snapshot)
}

// Options configures Run.
type Options struct {
	MaxAttempts int              // defaults to game.DefaultMaxAttempts
	Renderer    *render.Renderer // required
	Observer    Observer         // optional
}

// Outcome summarises a finished game.
type Outcome struct {
	SessionID string
	State     game.State
	Secret    game.Word
	Guesses   int
}

// Run plays one game reading guesses from in and drawing to out.
func Run(ctx context.Context, sampler game.Sampler, in io.Reader, out io.Writer, opts Options) (Outcome, error) {
	if opts.MaxAttempts == 0 {
		opts.MaxAttempts = game.DefaultMaxAttempts
	}
	if opts.Renderer == nil {
		return Outcome{}, errors.New("play: renderer is required")
	}

	sess, err := game.Start(sampler, opts.MaxAttempts)
	if err != nil {
		return Outcome{}, err
	}
	logger := log.With().Str("session", sess.ID()).Logger()
	logger.Info().Int("wordLength", sess.WordLength()).Int("maxAttempts", sess.MaxAttempts()).Msg("session started")

	show := func() {
		snap := sess.Snapshot()
		fmt.Fprint(out, opts.Renderer.Board(snap))
		if opts.Observer != nil {
			opts.Observer.Publish(snap)
		}
	}
	show()

	readCtx, stopReading := context.WithCancel(ctx)
	defer stopReading()
	tokens := readTokens(readCtx, in)
	for !sess.State().Terminal() {
		if err := ctx.Err(); err != nil {
			logger.Warn().Err(err).Msg("session cancelled")
			return outcome(sess), fmt.Errorf("%w: %w", ErrAborted, err)
		}
		fmt.Fprint(out, "        ")

		var tok token
		select {
		case <-ctx.Done():
			logger.Warn().Err(ctx.Err()).Msg("session cancelled")
			return outcome(sess), fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
		case t, ok := <-tokens:
			if !ok {
				logger.Warn().Msg("input closed")
				return outcome(sess), ErrAborted
			}
			if t.err != nil {
				return outcome(sess), fmt.Errorf("%w: read guess: %w", ErrAborted, t.err)
			}
			tok = t
		}

		fb, st, err := sess.SubmitGuess(tok.text)
		if errors.Is(err, game.ErrLengthMismatch) {
			logger.Debug().Str("guess", tok.text).Msg("rejected guess")
			fmt.Fprintf(out, "\nInvalid word, must be a %d letter word!\n\n", sess.WordLength())
			continue
		}
		if err != nil {
			return outcome(sess), err
		}
		logger.Debug().
			Int("attempt", sess.MaxAttempts()-sess.AttemptsRemaining()).
			Str("state", string(st)).
			Bool("solved", fb.Solved()).
			Msg("guess applied")
		fmt.Fprintln(out)
		show()
	}

	res := outcome(sess)
	if res.State == game.StateWon {
		fmt.Fprintln(out, "Congratulations!!!")
	} else {
		fmt.Fprintf(out, "Better luck next time... The word was %s\n", res.Secret)
	}
	logger.Info().Stringer("summary", sess.Snapshot()).Int("guesses", res.Guesses).Msg("session finished")
	return res, nil
}

type token struct {
	text string
	err  error
}

// readTokens scans whitespace-delimited tokens from in on its own goroutine
// so the caller can stop waiting when ctx is done. The channel is closed at
// end of input; a read error is delivered as the last token.
func readTokens(ctx context.Context, in io.Reader) <-chan token {
	ch := make(chan token)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(in)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			select {
			case ch <- token{text: sc.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			select {
			case ch <- token{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}

func outcome(s *game.Session) Outcome {
	return Outcome{
		SessionID: s.ID(),
		State:     s.State(),
		Secret:    s.Secret(),
		Guesses:   s.MaxAttempts() - s.AttemptsRemaining(),
	}
}
