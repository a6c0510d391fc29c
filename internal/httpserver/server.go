// internal/httpserver/server.go
//
// Read-only diagnostics listener for a running game.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - GET /health         → liveness.
//   - GET /debug/words    → corpus line counts.
//   - GET /debug/session  → latest published session snapshot.
//
// Notes:
//   - Nothing here accepts guesses; the game is played on the terminal only.
//   - The secret is never served while the session is still in play
//     (game.Snapshot omits it until the game is finished).

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-cli/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/words"
)

// CorpusStats is the slice of words.Corpus the server needs.
type CorpusStats interface {
	Stats() (words.Stats, error)
}

// Board holds the latest snapshot published by the play loop.
// It is safe for concurrent use.
type Board struct {
	mu   sync.RWMutex
	snap *game.Snapshot
}

// Publish replaces the current snapshot.
func (b *Board) Publish(s game.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = &s
}

// Current returns the latest snapshot, if any.
func (b *Board) Current() (game.Snapshot, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.snap == nil {
		return game.Snapshot{}, false
	}
	return *b.snap, true
}

// Server bundles router and the state it reports on.
type Server struct {
	r      *chi.Mux
	corpus CorpusStats
	board  *Board
	http   *http.Server
}

// New constructs a Server, installs middleware, and registers routes.
func New(corpus CorpusStats, board *Board) *Server {
	s := &Server{r: chi.NewRouter(), corpus: corpus, board: board}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                // add X-Request-ID
	s.r.Use(chimw.Recoverer)                // recover from panics
	s.r.Use(chimw.Timeout(5 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                // default JSON responses

	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordle-cli","endpoints":["/health","/debug/words","/debug/session"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", s.handleWords)
	s.r.Get("/debug/session", s.handleSession)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	s.http = &http.Server{Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Start serves HTTP on addr until Shutdown is called.
// Start and Shutdown may run on different goroutines.
func (s *Server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("diagnostics listening")
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	st, err := s.corpus.Stats()
	if err != nil {
		log.Warn().Err(err).Msg("corpus stats")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "corpus_unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.board.Current()
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no_session"})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
