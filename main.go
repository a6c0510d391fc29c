package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-cli/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/play"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/render"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/words"
)

const releaseVersion = "0.1.0"

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newCmd(&Config{}).ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("wordle exited")
	}
}

// setupLogging sends logs to stderr so they never interleave with the board.
func setupLogging(cfg *Config) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.noColor, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(cfg.logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

// run plays one game with the configured corpus.
func run(ctx context.Context, cfg *Config, in io.Reader, out io.Writer) error {
	corpus := words.NewCorpus(cfg.corpusSource(), cfg.corpusOptions(time.Now())...)
	log.Debug().Str("corpus", corpus.Name()).Bool("daily", cfg.daily).Msg("corpus ready")

	board := &httpserver.Board{}
	if cfg.debugAddr != "" {
		srv := httpserver.New(corpus, board)
		go func() {
			if err := srv.Start(cfg.debugAddr); err != nil {
				log.Error().Err(err).Msg("diagnostics server exited")
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(sctx)
		}()
	}

	_, err := play.Run(ctx, corpus, in, out, play.Options{
		MaxAttempts: cfg.maxAttempts,
		Renderer:    render.New(out, !cfg.noColor),
		Observer:    board,
	})
	return err
}
