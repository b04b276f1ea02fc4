package screenshot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	urlPlaceholder        = "{url}"
	maxServiceBytes       = 10 << 20
	defaultServiceTimeout = 20 * time.Second
)

// Service calls a hosted screenshot API. The template must contain {url},
// which is replaced by the query-escaped target.
type Service struct {
	template string
	client   *http.Client
}

func NewService(template string, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = defaultServiceTimeout
	}
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	return &Service{template: strings.TrimSpace(template), client: client}
}

func (s *Service) Capture(ctx context.Context, target string) (Shot, error) {
	if s == nil || s.template == "" || !strings.Contains(s.template, urlPlaceholder) {
		return Shot{}, ErrNotConfigured
	}

	endpoint := strings.ReplaceAll(s.template, urlPlaceholder, url.QueryEscape(target))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Shot{}, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return Shot{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	ct := resp.Header.Get("Content-Type")
	if resp.StatusCode != http.StatusOK || !strings.HasPrefix(strings.ToLower(ct), "image/") {
		return Shot{}, fmt.Errorf("%w: status %d content-type %q", ErrUpstream, resp.StatusCode, ct)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxServiceBytes))
	if err != nil {
		return Shot{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return Shot{ContentType: ct, Body: body}, nil
}
