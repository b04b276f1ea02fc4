package usecase

import (
	"context"
	"errors"

	"bookmark-manager/internal/media"
	"bookmark-manager/pkg/placeholder"
)

// Screenshot tries the configured capture chain and falls back to a generated SVG.
func (uc *implUseCase) Screenshot(ctx context.Context, input media.ScreenshotInput) (media.ScreenshotOutput, error) {
	u, err := uc.parse(input.URL)
	if errors.Is(err, media.ErrBlockedHost) {
		uc.l.Warnf(ctx, "uc.Screenshot blocked host %q, serving placeholder", input.URL)
		return placeholderOutput(urlHost(input.URL)), nil
	}
	if err != nil {
		return media.ScreenshotOutput{}, err
	}

	// The browser resolves the host itself, so the addresses are checked here.
	if uc.shots != nil {
		if _, err := uc.guard.Resolve(ctx, u.String()); err != nil {
			uc.l.Warnf(ctx, "uc.Screenshot Resolve %s: %v, serving placeholder", u.Host, err)
			uc.metrics.Scrape("screenshot", "blocked")
			return placeholderOutput(u.Hostname()), nil
		}

		shotCtx, cancel := context.WithTimeout(ctx, uc.cfg.ScreenshotTimeout)
		defer cancel()

		shot, err := uc.shots.Capture(shotCtx, u.String())
		if err == nil {
			uc.metrics.Scrape("screenshot", "ok")
			return media.ScreenshotOutput{ContentType: shot.ContentType, Body: shot.Body}, nil
		}
		uc.l.Warnf(ctx, "uc.Screenshot Capture %s: %v", u.String(), err)
	}

	uc.metrics.Scrape("screenshot", "placeholder")
	return placeholderOutput(u.Hostname()), nil
}

func placeholderOutput(host string) media.ScreenshotOutput {
	return media.ScreenshotOutput{
		ContentType: placeholder.ContentType,
		Body:        placeholder.SVG(host),
		Placeholder: true,
	}
}
