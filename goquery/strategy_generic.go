package goquery

import (
	"strings"

	"github.com/fwojciec/jobscrape"
)

var _ Strategy = (*GenericStrategy)(nil)

// GenericStrategy extracts unknown layouts on a best-effort basis.
// It never returns an empty description for a page that has content:
// the last resort is the whole root.
type GenericStrategy struct {
	// Extractor optionally narrows the page to its main content when no
	// well-known content region matches. Errors from it are ignored.
	Extractor jobscrape.Extractor
}

// NewGenericStrategy creates a GenericStrategy. extractor may be nil.
func NewGenericStrategy(extractor jobscrape.Extractor) *GenericStrategy {
	return &GenericStrategy{Extractor: extractor}
}

// Site returns jobscrape.SiteDefault.
func (s *GenericStrategy) Site() jobscrape.Site {
	return jobscrape.SiteDefault
}

var genericConfig = SelectorConfig{
	Description: []string{
		"main",
		"article",
		`[role="main"]`,
		".job-description",
		".description",
		".content",
		"#content",
	},
	Title: []string{
		"h1",
		`[class*="job-title"]`,
		".job-title",
		".title",
	},
	Company: []string{
		`[class*="company-name"]`,
		".company",
		`[itemprop="hiringOrganization"]`,
	},
	Location: []string{
		`[class*="job-location"]`,
		".location",
		`[itemprop="jobLocation"]`,
	},
}

// Extract implements Strategy.
func (s *GenericStrategy) Extract(page *Page) jobscrape.Fields {
	root := page.Root

	title := GetTextContent(root, genericConfig.Title)
	if title == "" && page.Document != nil {
		title = jobscrape.NormalizeText(page.Document.Find("title").First().Text())
	}

	description := GetHTMLContent(FirstWithText(root, genericConfig.Description))
	if description == "" {
		description = s.refine(page)
	}
	if description == "" {
		description = GetHTMLContent(root)
	}

	return jobscrape.Fields{
		Description: description,
		Title:       title,
		Company:     GetTextContent(root, genericConfig.Company),
		Location:    GetTextContent(root, genericConfig.Location),
	}
}

func (s *GenericStrategy) refine(page *Page) string {
	if s.Extractor == nil || page.Document == nil {
		return ""
	}
	html, err := page.Document.Html()
	if err != nil {
		return ""
	}
	result, err := s.Extractor.Extract(html)
	if err != nil || result == nil {
		return ""
	}
	return strings.TrimSpace(result.ContentHTML)
}
