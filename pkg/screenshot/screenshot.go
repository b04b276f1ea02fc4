package screenshot

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("screenshot: not configured")
	ErrUpstream      = errors.New("screenshot: upstream failed")
)

// Shot is a captured image.
type Shot struct {
	ContentType string
	Body        []byte
}

// Capturer produces a screenshot of a page.
type Capturer interface {
	Capture(ctx context.Context, target string) (Shot, error)
}

// Chain tries each capturer in order and returns the first success.
type Chain []Capturer

func (c Chain) Capture(ctx context.Context, target string) (Shot, error) {
	errs := make([]error, 0, len(c))
	for _, capt := range c {
		if capt == nil {
			continue
		}
		shot, err := capt.Capture(ctx, target)
		if err == nil {
			return shot, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return Shot{}, ErrNotConfigured
	}
	return Shot{}, errors.Join(errs...)
}
