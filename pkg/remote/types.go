package remote

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrNotConfigured = errors.New("remote: not configured")
	ErrUnauthorized  = errors.New("remote: unauthorized")
	ErrRemote        = errors.New("remote: request failed")
	ErrNoSnapshot    = errors.New("remote: no snapshot")
)

const DefaultTable = "bookmark_snapshots"

// Config describes the hosted backend.
type Config struct {
	BaseURL      string
	APIKey       string
	UserID       string
	Table        string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Snapshot is one row of the snapshot table.
type Snapshot struct {
	UserID    string          `json:"user_id"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}
