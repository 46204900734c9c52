package goquery

import (
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscrape"
)

var _ Strategy = (*GoogleJobsStrategy)(nil)

// GoogleJobsStrategy extracts the job panel of a Google Jobs search.
// The panel is rendered outside the body's nominal content, so it reads
// from the full document: the c-wiz element whose data-encoded-docid
// matches the docid in the URL, or the known panel classes otherwise.
type GoogleJobsStrategy struct{}

// NewGoogleJobsStrategy creates a new GoogleJobsStrategy.
func NewGoogleJobsStrategy() *GoogleJobsStrategy {
	return &GoogleJobsStrategy{}
}

// Site returns jobscrape.SiteGoogleJobs.
func (s *GoogleJobsStrategy) Site() jobscrape.Site {
	return jobscrape.SiteGoogleJobs
}

var googleJobsConfig = SelectorConfig{
	Description: []string{
		".HBvzbc",
		".YgLbBe",
		"[jsname='bN97Pc']",
		".whazf",
	},
	Title: []string{
		".tNxQIb",
		".sH3zFd",
		"h2",
		"h1",
	},
	Company: []string{
		".nJlQNd",
		".wHYlTd",
		".vNEEBe",
	},
	Location: []string{
		".Qk80Jf",
		".sMzDkb",
		".tJ9zfc div",
	},
}

var docIDRe = regexp.MustCompile(`docid=([^&]+)`)

// Extract implements Strategy.
func (s *GoogleJobsStrategy) Extract(page *Page) jobscrape.Fields {
	scope := page.Root
	if page.Document != nil {
		scope = page.Document.Selection
	}
	description := ""

	if panel := findDocPanel(page.Document, GoogleDocID(page.URL)); panel != nil {
		scope = panel
		description = GetHTMLContent(panel)
	}
	if description == "" {
		description = GetHTMLContent(FirstWithText(scope, googleJobsConfig.Description))
	}
	if description == "" {
		description = ScanSection(scope)
	}

	return jobscrape.Fields{
		Description: description,
		Title:       GetTextContent(scope, googleJobsConfig.Title),
		Company:     GetTextContent(scope, googleJobsConfig.Company),
		Location:    GetTextContent(scope, googleJobsConfig.Location),
	}
}

// GoogleDocID returns the docid parameter of a Google Jobs URL after
// percent-decoding, or an empty string when there is none.
func GoogleDocID(rawURL string) string {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}
	m := docIDRe.FindStringSubmatch(decoded)
	if m == nil {
		return ""
	}
	return m[1]
}

// findDocPanel compares attribute values directly so that an id containing
// quotes can't produce an invalid selector.
func findDocPanel(doc *goquery.Document, docID string) *goquery.Selection {
	if doc == nil || docID == "" {
		return nil
	}
	panel := doc.Find("c-wiz[data-encoded-docid]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("data-encoded-docid")
		return v == docID
	}).First()
	if panel.Length() == 0 {
		return nil
	}
	return panel
}
