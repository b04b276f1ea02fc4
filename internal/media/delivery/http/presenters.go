package http

import "bookmark-manager/internal/media"

const (
	cacheLongLived    = "public, max-age=86400"
	cachePlaceholder  = "public, max-age=3600"
	headerImageSource = "X-Image-Source"
)

type proxyImageReq struct {
	URL string `form:"url"`
	Src string `form:"src"`
}

func (r proxyImageReq) toInput() media.ProxyImageInput {
	if r.URL != "" {
		return media.ProxyImageInput{URL: r.URL}
	}
	return media.ProxyImageInput{URL: r.Src}
}

type screenshotReq struct {
	URL string `form:"url"`
}

func (r screenshotReq) toInput() media.ScreenshotInput {
	return media.ScreenshotInput{URL: r.URL}
}

type errorResp struct {
	Error string `json:"error"`
}
