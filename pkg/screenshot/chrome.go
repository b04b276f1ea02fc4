package screenshot

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/fetch"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

const (
	ViewportWidth  = 1280
	ViewportHeight = 800
)

// URLChecker vets a URL and the addresses its host resolves to.
// *urlguard.Guard satisfies it.
type URLChecker interface {
	Resolve(ctx context.Context, raw string) (*url.URL, error)
}

// Chrome captures screenshots with a local headless browser. When Guard is
// set every request the page makes, redirects and subresources included, is
// paused and failed unless Guard accepts it.
type Chrome struct {
	Timeout   time.Duration
	UserAgent string
	ExecPath  string
	Guard     URLChecker
}

func (c Chrome) Capture(ctx context.Context, target string) (Shot, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Headless,
		chromedp.WindowSize(ViewportWidth, ViewportHeight),
	)
	if c.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(c.UserAgent))
	}
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	actx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	bctx, cancelBrowser := chromedp.NewContext(actx)
	defer cancelBrowser()

	var actions chromedp.Tasks
	if c.Guard != nil {
		c.interceptRequests(bctx)
		actions = append(actions, fetch.Enable())
	}

	var buf []byte
	actions = append(actions,
		chromedp.EmulateViewport(ViewportWidth, ViewportHeight),
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.CaptureScreenshot(&buf),
	)
	if err := chromedp.Run(bctx, actions); err != nil {
		return Shot{}, fmt.Errorf("%w: chromedp: %v", ErrUpstream, err)
	}
	return Shot{ContentType: "image/png", Body: buf}, nil
}

// interceptRequests answers every paused request. Handlers run in their own
// goroutine because ListenTarget callbacks must not block.
func (c Chrome) interceptRequests(ctx context.Context) {
	chromedp.ListenTarget(ctx, func(ev any) {
		paused, ok := ev.(*fetch.EventRequestPaused)
		if !ok {
			return
		}
		go func() {
			ectx := cdp.WithExecutor(ctx, chromedp.FromContext(ctx).Target)
			if AllowRequest(ctx, c.Guard, paused.Request.URL) {
				_ = fetch.ContinueRequest(paused.RequestID).Do(ectx)
				return
			}
			_ = fetch.FailRequest(paused.RequestID, network.ErrorReasonBlockedByClient).Do(ectx)
		}()
	})
}

// AllowRequest reports whether the browser may load raw. Inline data and
// blob URLs never leave the browser and are always allowed.
func AllowRequest(ctx context.Context, guard URLChecker, raw string) bool {
	if guard == nil {
		return true
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "data:") || strings.HasPrefix(lower, "blob:") {
		return true
	}
	_, err := guard.Resolve(ctx, raw)
	return err == nil
}
