package entity

import "context"

// Logger specifies a contextual, structured logger.
// sabot.Sabot satisfies it.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}

// Discard is a Logger that drops everything.
var Discard Logger = discard{}

type discard struct{}

func (discard) Info(ctx context.Context, msg string, kv ...any)              {}
func (discard) Error(ctx context.Context, msg string, err error, kv ...any) {}
