package usecase

import (
	"context"
	"io"
	"net/netip"
	"strings"
	"sync"

	"bookmark-manager/pkg/fetcher"
	"bookmark-manager/pkg/screenshot"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock image fetcher keyed by URL prefix.
type mockImages struct {
	mu     sync.Mutex
	images map[string]string
	errs   map[string]error
	calls  []string
	ctxs   []context.Context
}

func (m *mockImages) FetchImage(ctx context.Context, rawURL string) (fetcher.Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, rawURL)
	m.ctxs = append(m.ctxs, ctx)
	for prefix, err := range m.errs {
		if strings.HasPrefix(rawURL, prefix) {
			return fetcher.Image{}, err
		}
	}
	for prefix, body := range m.images {
		if strings.HasPrefix(rawURL, prefix) {
			return fetcher.Image{
				ContentType: "image/png",
				Length:      int64(len(body)),
				Body:        io.NopCloser(strings.NewReader(body)),
			}, nil
		}
	}
	return fetcher.Image{}, fetcher.ErrStatus
}

type mockCapturer struct {
	shot  screenshot.Shot
	err   error
	calls int
}

func (m *mockCapturer) Capture(ctx context.Context, target string) (screenshot.Shot, error) {
	m.calls++
	return m.shot, m.err
}

// stubResolver answers from a fixed table and resolves anything else to a
// public documentation address.
type stubResolver map[string][]netip.Addr

func (s stubResolver) LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error) {
	if addrs, ok := s[host]; ok {
		return addrs, nil
	}
	return []netip.Addr{netip.MustParseAddr("93.184.216.34")}, nil
}
