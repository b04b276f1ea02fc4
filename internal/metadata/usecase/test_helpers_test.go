package usecase

import (
	"context"
	"sync"

	"bookmark-manager/pkg/fetcher"
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

// Mock page fetcher returning canned pages per URL.
type mockFetcher struct {
	mu       sync.Mutex
	pages    map[string]fetcher.Page
	err      error
	calls    int
	deadline bool
}

func (m *mockFetcher) FetchPage(ctx context.Context, rawURL string) (fetcher.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return fetcher.Page{}, m.err
	}
	p, ok := m.pages[rawURL]
	if !ok {
		return fetcher.Page{}, fetcher.ErrStatus
	}
	if p.FinalURL == "" {
		p.FinalURL = rawURL
	}
	return p, nil
}
