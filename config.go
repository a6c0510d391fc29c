package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/apps/wordle-cli/internal/daily"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/words"
)

type Config struct {
	corpus      string
	daily       bool
	dailySalt   string
	debugAddr   string
	logLevel    string
	maxAttempts int
	noColor     bool
	seed        uint64
}

func (c *Config) validate() error {
	if c.maxAttempts < 1 {
		return fmt.Errorf("invalid max attempts (must be at least 1): %d", c.maxAttempts)
	}
	if c.daily && c.seed != 0 {
		return errors.New("--daily and --seed cannot be used together")
	}
	if _, err := zerolog.ParseLevel(c.logLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.logLevel, err)
	}
	return nil
}

// corpusSource picks the word list: --corpus, then the server's
// WORDS_ALLOWED_FILE, then the embedded default.
func (c *Config) corpusSource() words.Source {
	if c.corpus != "" {
		return words.FileSource(c.corpus)
	}
	if p := os.Getenv("WORDS_ALLOWED_FILE"); p != "" {
		return words.FileSource(p)
	}
	return words.EmbeddedSource()
}

func (c *Config) corpusOptions(now time.Time) []words.Option {
	switch {
	case c.daily:
		return []words.Option{words.WithSeed(daily.Seed(now, c.dailySalt))}
	case c.seed != 0:
		return []words.Option{words.WithSeed(c.seed)}
	}
	return nil
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WORDLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the hidden word in a limited number of attempts.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			setupLogging(cfg)
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.corpus, "corpus", "c", "", "word list, one word per line (env: WORDLE_CORPUS, WORDS_ALLOWED_FILE)")
	fs.BoolVar(&cfg.daily, "daily", false, "play the word of the day (env: WORDLE_DAILY)")
	fs.StringVar(&cfg.dailySalt, "daily-salt", daily.DefaultSalt, "salt for the word of the day (env: WORDLE_DAILY_SALT)")
	fs.StringVar(&cfg.debugAddr, "debug-addr", "", "serve read-only diagnostics on this address, e.g. 127.0.0.1:5175 (env: WORDLE_DEBUG_ADDR)")
	fs.StringVar(&cfg.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "trace|debug|info|warn|error (env: WORDLE_LOG_LEVEL, LOG_LEVEL)")
	fs.IntVarP(&cfg.maxAttempts, "max-attempts", "n", game.DefaultMaxAttempts, "guesses allowed per game (env: WORDLE_MAX_ATTEMPTS)")
	fs.BoolVar(&cfg.noColor, "no-color", false, "mark letters with brackets instead of colours (env: WORDLE_NO_COLOR)")
	fs.Uint64Var(&cfg.seed, "seed", 0, "fixed random seed, 0 picks one (env: WORDLE_SEED)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wordle v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
