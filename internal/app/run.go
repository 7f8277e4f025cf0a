package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/treehouse/internal/ctxlog"
	"github.com/specialistvlad/treehouse/internal/visitor"
)

const (
	prompt         = "Hello, what's your name? (Leave empty and press ENTER to quit)"
	newcomerGreet  = "New friend"
	finalListTitle = "The final list of visitors:"
)

// Run prompts for names until an empty one is entered, then prints the
// final visitor list. A read failure on the input stream is returned as is
// and wraps console.ErrReadLine.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(a.outW, prompt)
		name, err := a.in.ReadName()
		if err != nil {
			logger.Error("Reading from the console failed.", "error", err)
			return err
		}
		fmt.Fprintf(a.outW, "Hello %s\n", name)
		fmt.Fprintf(a.outW, "%q\n", name)

		known, found := a.registry.Lookup(name)
		logger.Debug("Visitor looked up.", "name", name, "found", found, "registry_size", a.registry.Len())

		if found {
			if err := known.Greet(a.outW); err != nil {
				return fmt.Errorf("failed to greet %q: %w", name, err)
			}
			continue
		}

		if name == "" {
			break
		}

		fmt.Fprintf(a.outW, "%s is not on the visitor list.\n", name)
		a.registry.Append(visitor.New(name, newcomerGreet, visitor.Probation(), 0))
		logger.Debug("Visitor added on probation.", "name", name, "registry_size", a.registry.Len())
	}

	fmt.Fprintln(a.outW, finalListTitle)
	if err := a.registry.Dump(a.outW); err != nil {
		return fmt.Errorf("failed to print visitor list: %w", err)
	}

	logger.Info("Session finished.", "visitors", a.registry.Len())
	logger.Debug("App.Run method finished.")
	return nil
}
