package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	pkgLog "bookmark-manager/pkg/log"
)

// Client upserts and reads library snapshots from a PostgREST-style backend.
type Client struct {
	cfg  Config
	http *retryablehttp.Client
	l    pkgLog.Logger
}

func New(cfg Config, l pkgLog.Logger) *Client {
	if cfg.Table == "" {
		cfg.Table = DefaultTable
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.RetryMax == 0 {
		cfg.RetryMax = 3
	}

	hc := retryablehttp.NewClient()
	hc.RetryMax = cfg.RetryMax
	if cfg.RetryWaitMin > 0 {
		hc.RetryWaitMin = cfg.RetryWaitMin
	}
	if cfg.RetryWaitMax > 0 {
		hc.RetryWaitMax = cfg.RetryWaitMax
	}
	hc.HTTPClient.Timeout = cfg.Timeout
	hc.Logger = leveledLogger{l: l}
	hc.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		retry, err := retryablehttp.DefaultRetryPolicy(ctx, resp, err)
		if retry || err != nil {
			return retry, err
		}
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			return true, nil
		}
		return false, nil
	}

	return &Client{cfg: cfg, http: hc, l: l}
}

// Enabled reports whether a backend is configured.
func (c *Client) Enabled() bool {
	return c != nil && strings.TrimSpace(c.cfg.BaseURL) != ""
}

// UserID returns the configured owner of pushed snapshots.
func (c *Client) UserID() string {
	return c.cfg.UserID
}

// Push upserts the snapshot for the configured user.
func (c *Client) Push(ctx context.Context, data json.RawMessage) (Snapshot, error) {
	if !c.Enabled() {
		return Snapshot{}, ErrNotConfigured
	}

	snap := Snapshot{UserID: c.cfg.UserID, Data: data, UpdatedAt: time.Now().UTC()}
	body, err := json.Marshal(snap)
	if err != nil {
		return Snapshot{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(nil), bytes.NewReader(body))
	if err != nil {
		return Snapshot{}, err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates")

	resp, err := c.http.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// Pull fetches the latest snapshot for the configured user.
func (c *Client) Pull(ctx context.Context) (Snapshot, error) {
	if !c.Enabled() {
		return Snapshot{}, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_id", "eq."+c.cfg.UserID)
	q.Set("order", "updated_at.desc")
	q.Set("limit", "1")

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(q), nil)
	if err != nil {
		return Snapshot{}, err
	}
	c.authorize(req)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return Snapshot{}, err
	}

	var rows []Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decode: %v", ErrRemote, err)
	}
	if len(rows) == 0 {
		return Snapshot{}, ErrNoSnapshot
	}
	return rows[0], nil
}

func (c *Client) tableURL(q url.Values) string {
	u := strings.TrimRight(c.cfg.BaseURL, "/") + "/rest/v1/" + c.cfg.Table
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func (c *Client) authorize(req *retryablehttp.Request) {
	req.Header.Set("apikey", c.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRemote, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return nil
}

// leveledLogger routes retryablehttp logs into the app logger.
type leveledLogger struct {
	l pkgLog.Logger
}

func (ll leveledLogger) Error(msg string, kv ...interface{}) {
	if ll.l != nil {
		ll.l.Errorf(context.Background(), "remote: %s %v", msg, kv)
	}
}

func (ll leveledLogger) Info(msg string, kv ...interface{}) {
	if ll.l != nil {
		ll.l.Debugf(context.Background(), "remote: %s %v", msg, kv)
	}
}

func (ll leveledLogger) Debug(msg string, kv ...interface{}) {
	if ll.l != nil {
		ll.l.Debugf(context.Background(), "remote: %s %v", msg, kv)
	}
}

func (ll leveledLogger) Warn(msg string, kv ...interface{}) {
	if ll.l != nil {
		ll.l.Warnf(context.Background(), "remote: %s %v", msg, kv)
	}
}
