package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-cli/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/words"
)

type brokenCorpus struct{}

func (brokenCorpus) Stats() (words.Stats, error) { return words.Stats{}, errors.New("gone") }

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealth(t *testing.T) {
	s := New(words.NewCorpus(words.ReaderSource("t", "crane\n")), &Board{})
	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestDebugWords(t *testing.T) {
	s := New(words.NewCorpus(words.ReaderSource("t", "crane\n\nslate\n")), &Board{})
	rec := get(t, s, "/debug/words")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"name":"t","lines":3,"usable":2}`, rec.Body.String())

	rec = get(t, New(brokenCorpus{}, &Board{}), "/debug/words")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDebugSessionHidesSecretUntilFinished(t *testing.T) {
	board := &Board{}
	s := New(brokenCorpus{}, board)

	rec := get(t, s, "/debug/session")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	sess, err := game.NewSession("CRANE", 6)
	require.NoError(t, err)
	_, _, err = sess.SubmitGuess("TRACE")
	require.NoError(t, err)
	board.Publish(sess.Snapshot())

	rec = get(t, s, "/debug/session")
	require.Equal(t, http.StatusOK, rec.Code)
	var snap game.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, game.StateAwaitingGuess, snap.State)
	assert.Equal(t, 5, snap.AttemptsRemaining)
	assert.Empty(t, snap.Secret)
	assert.NotContains(t, rec.Body.String(), "CRANE")
	require.Len(t, snap.History, 1)
	assert.Equal(t, game.Feedback{game.MarkAbsent, game.MarkCorrect, game.MarkCorrect, game.MarkPresent, game.MarkCorrect}, snap.History[0].Feedback)

	_, _, err = sess.SubmitGuess("CRANE")
	require.NoError(t, err)
	board.Publish(sess.Snapshot())
	rec = get(t, s, "/debug/session")
	assert.Contains(t, rec.Body.String(), `"secret":"CRANE"`)
}

func TestNotFound(t *testing.T) {
	rec := get(t, New(brokenCorpus{}, &Board{}), "/game/guess")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
}

func TestStartShutdown(t *testing.T) {
	s := New(brokenCorpus{}, &Board{})
	done := make(chan error, 1)
	go func() { done <- s.Start("127.0.0.1:0") }()

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-done)
}
