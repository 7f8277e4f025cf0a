package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/specialistvlad/treehouse/internal/app"
	"github.com/specialistvlad/treehouse/internal/console"
)

// Exit codes used by the treehouse binary.
const (
	ExitUsage        = 2
	ExitInputFailure = 101
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// FromRunError maps an error returned by App.Run to the error the process
// should exit with. A broken input stream gets its own exit code.
func FromRunError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, console.ErrReadLine) {
		return &ExitError{Code: ExitInputFailure, Message: err.Error()}
	}
	return err
}

// envDefaults holds the values flags fall back to when not given.
type envDefaults struct {
	LogLevel     string `env:"TREEHOUSE_LOG_LEVEL" envDefault:"warn"`
	LogFormat    string `env:"TREEHOUSE_LOG_FORMAT" envDefault:"text"`
	VisitorsPath string `env:"TREEHOUSE_VISITORS"`
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("parse env: %v", err)}
	}

	flagSet := flag.NewFlagSet("treehouse", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Treehouse - greets visitors at the door and keeps the guest list.

Usage:
  treehouse [options]

Type a name and press ENTER. Leave the line empty to quit and print the
final list of visitors.

Options:
`)
		flagSet.PrintDefaults()
	}

	visitorsFlag := flagSet.String("visitors", defaults.VisitorsPath, "Path to an .hcl file or directory declaring the initial visitors. Env: TREEHOUSE_VISITORS.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'. Env: TREEHOUSE_LOG_FORMAT.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Env: TREEHOUSE_LOG_LEVEL.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}
	slog.Debug("Arguments parsed successfully.")

	config, err := app.NewConfig(app.Config{
		VisitorsPath: strings.TrimSpace(*visitorsFlag),
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
