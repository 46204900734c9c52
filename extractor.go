package jobscrape

// ExtractResult holds the main content found in an HTML fragment.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as HTML with boilerplate
	// (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor locates the main content of a page. The fallback strategy uses
// it to narrow an unknown layout before settling for the whole document.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
