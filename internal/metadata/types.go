package metadata

// FetchInput carries the raw url query parameter.
type FetchInput struct {
	URL string
}

type TitleOutput struct {
	Title string
	URL   string
	// Fallback is set when the page could not be fetched and Title is the domain.
	Fallback bool
}

type MetaOutput struct {
	Title       string
	Description string
	Image       string
	Favicon     string
	SiteName    string
	URL         string
	Fallback    bool
}
