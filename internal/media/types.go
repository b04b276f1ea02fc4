package media

import "io"

// Image sources reported in ImageOutput.Source.
const (
	SourceUpstream = "upstream"
	SourceFavicon  = "favicon"
)

type ProxyImageInput struct {
	URL string
}

// ImageOutput streams an image. Callers must close Body.
type ImageOutput struct {
	ContentType string
	Length      int64
	Body        io.ReadCloser
	Source      string
}

type ScreenshotInput struct {
	URL string
}

type ScreenshotOutput struct {
	ContentType string
	Body        []byte
	Placeholder bool
}
