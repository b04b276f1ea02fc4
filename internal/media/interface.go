package media

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ProxyImage fetches an upstream image, falling back to the site favicon.
	ProxyImage(ctx context.Context, input ProxyImageInput) (ImageOutput, error)
	// Screenshot captures a page preview. It always yields an image: when no
	// capture backend succeeds a generated placeholder is returned.
	Screenshot(ctx context.Context, input ScreenshotInput) (ScreenshotOutput, error)
}
