package sync

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Push uploads the whole library as the user's latest snapshot.
	Push(ctx context.Context) (PushOutput, error)
	// Pull imports the latest snapshot with merge semantics.
	Pull(ctx context.Context) (PullOutput, error)
	// Enabled reports whether a hosted backend is configured.
	Enabled() bool
}
