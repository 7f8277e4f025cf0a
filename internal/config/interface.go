package config

import "context"

// Loader is the interface for a format-specific seed loader.
type Loader interface {
	// Load reads every seed file found under the given paths and translates
	// them into a single Model. Visitors keep the order in which they were
	// declared, files being visited in lexical order.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
