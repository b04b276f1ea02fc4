package sync

import "errors"

var (
	ErrSyncDisabled       = errors.New("sync disabled")
	ErrRemoteUnauthorized = errors.New("hosted backend rejected the credentials")
	ErrRemote             = errors.New("hosted backend request failed")
	ErrNoSnapshot         = errors.New("no snapshot stored for this user")
)
