package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/specialistvlad/treehouse/internal/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.VisitorsPath)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-visitors", "guests.hcl", "-log-level", "DEBUG", "-log-format", "json"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "guests.hcl", cfg.VisitorsPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-visitors")
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown flag", []string{"--nope"}, "flag provided but not defined: -nope"},
		{"bad level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"bad format", []string{"-log-format", "yaml"}, "invalid log-format"},
		{"positional argument", []string{"bert"}, "unexpected argument: bert"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, ExitUsage, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

// Environment tests cannot run in parallel because of t.Setenv.
func TestParse_EnvironmentDefaults(t *testing.T) {
	t.Setenv("TREEHOUSE_LOG_LEVEL", "info")
	t.Setenv("TREEHOUSE_LOG_FORMAT", "json")
	t.Setenv("TREEHOUSE_VISITORS", "/etc/treehouse")

	cfg, _, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "/etc/treehouse", cfg.VisitorsPath)

	cfg, _, err = Parse([]string{"-log-level", "error"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "flags win over the environment")
}

func TestParse_InvalidEnvironment(t *testing.T) {
	t.Setenv("TREEHOUSE_LOG_FORMAT", "xml")

	_, _, err := Parse(nil, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitUsage, exitErr.Code)
}

func TestFromRunError(t *testing.T) {
	t.Parallel()

	assert.NoError(t, FromRunError(nil))

	other := errors.New("greet failed")
	assert.Same(t, other, FromRunError(other))

	readErr := fmt.Errorf("%w: %w", console.ErrReadLine, errors.New("closed"))
	var exitErr *ExitError
	require.ErrorAs(t, FromRunError(readErr), &exitErr)
	assert.Equal(t, ExitInputFailure, exitErr.Code)
	assert.Equal(t, "failed to readline: closed", exitErr.Message)
}
