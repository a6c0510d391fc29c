package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-cli/internal/play"
	"github.com/robalobadob/wordle/apps/wordle-cli/internal/words"
)

func validConfig() *Config {
	return &Config{maxAttempts: 6, logLevel: "warn", noColor: true}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().validate())

	c := validConfig()
	c.maxAttempts = 0
	assert.Error(t, c.validate())

	c = validConfig()
	c.daily, c.seed = true, 9
	assert.Error(t, c.validate())

	c = validConfig()
	c.logLevel = "loud"
	assert.Error(t, c.validate())
}

func TestFlagsFromEnv(t *testing.T) {
	t.Setenv("WORDLE_MAX_ATTEMPTS", "3")
	t.Setenv("WORDLE_NO_COLOR", "true")

	cfg := &Config{}
	newCmd(cfg)
	assert.Equal(t, 3, cfg.maxAttempts)
	assert.True(t, cfg.noColor)
	assert.Equal(t, "local_dev_salt", cfg.dailySalt)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WORDLE_MAX_ATTEMPTS", "3")

	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--max-attempts", "8"}))
	assert.Equal(t, 8, cfg.maxAttempts)
}

func TestCorpusSource(t *testing.T) {
	t.Setenv("WORDS_ALLOWED_FILE", "")
	assert.True(t, strings.HasPrefix(validConfig().corpusSource().Name, "embedded:"))

	t.Setenv("WORDS_ALLOWED_FILE", "/srv/allowed.txt")
	assert.Equal(t, "/srv/allowed.txt", validConfig().corpusSource().Name)

	c := validConfig()
	c.corpus = "mine.txt"
	assert.Equal(t, "mine.txt", c.corpusSource().Name)
}

func TestDailyPicksSameWord(t *testing.T) {
	c := validConfig()
	c.daily = true
	c.dailySalt = "salt"
	day := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	a, err := words.NewCorpus(words.EmbeddedSource(), c.corpusOptions(day)...).SampleUniform()
	require.NoError(t, err)
	b, err := words.NewCorpus(words.EmbeddedSource(), c.corpusOptions(day.Add(10*time.Hour))...).SampleUniform()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRunPlaysOneGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\n"), 0o644))

	c := validConfig()
	c.corpus = path
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), c, strings.NewReader("slate crane"), &out))
	assert.Contains(t, out.String(), "Congratulations!!!")
}

func TestRunReportsAbort(t *testing.T) {
	c := validConfig()
	c.seed = 4
	err := run(context.Background(), c, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, play.ErrAborted)
}

func TestRunMissingCorpus(t *testing.T) {
	c := validConfig()
	c.corpus = filepath.Join(t.TempDir(), "missing.txt")
	err := run(context.Background(), c, strings.NewReader("crane"), &bytes.Buffer{})
	assert.ErrorIs(t, err, words.ErrCorpusUnavailable)
}

func TestCommandExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\n"), 0o644))

	cmd := newCmd(&Config{})
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader("crane\n"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--corpus", path, "--no-color", "--log-level", "error"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[C] [R] [A] [N] [E]")
}
