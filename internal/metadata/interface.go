package metadata

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// FetchTitle never fails once the url is valid: on upstream failure it
	// returns the domain name as title.
	FetchTitle(ctx context.Context, input FetchInput) (TitleOutput, error)
	// FetchMeta returns title and description with the same fallback rule.
	FetchMeta(ctx context.Context, input FetchInput) (MetaOutput, error)
}
