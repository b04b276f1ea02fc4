package http

import "bookmark-manager/internal/metadata"

type fetchReq struct {
	URL string `form:"url"`
}

func (r fetchReq) toInput() metadata.FetchInput {
	return metadata.FetchInput{URL: r.URL}
}

type titleResp struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (h *handler) newTitleResp(out metadata.TitleOutput) titleResp {
	return titleResp{Title: out.Title, URL: out.URL}
}

type metaResp struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	Favicon     string `json:"favicon,omitempty"`
	SiteName    string `json:"siteName,omitempty"`
}

func (h *handler) newMetaResp(out metadata.MetaOutput) metaResp {
	return metaResp{
		Title:       out.Title,
		Description: out.Description,
		URL:         out.URL,
		Image:       out.Image,
		Favicon:     out.Favicon,
		SiteName:    out.SiteName,
	}
}

type errorResp struct {
	Error string `json:"error"`
}
