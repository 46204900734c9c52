package goquery

import "github.com/fwojciec/jobscrape"

// Strategy extracts job fields from a page of one site.
// Strategies never fail: a field nothing matched is left empty.
type Strategy interface {
	// Extract returns the unsanitized description markup and the
	// normalized title, company and location.
	Extract(page *Page) jobscrape.Fields

	// Site returns the site tag the strategy serves.
	Site() jobscrape.Site
}

var _ Strategy = (*SelectorStrategy)(nil)

// SelectorConfig lists candidate selectors per field, tried in order.
type SelectorConfig struct {
	Description []string
	Title       []string
	Company     []string
	Location    []string
}

// SelectorStrategy extracts fields with a fallback selector chain per field.
// When no description candidate holds text it falls back to ScanSection.
type SelectorStrategy struct {
	site   jobscrape.Site
	config SelectorConfig
}

// NewSelectorStrategy creates a SelectorStrategy for site.
func NewSelectorStrategy(site jobscrape.Site, config SelectorConfig) *SelectorStrategy {
	return &SelectorStrategy{site: site, config: config}
}

// Site returns the site tag the strategy serves.
func (s *SelectorStrategy) Site() jobscrape.Site {
	return s.site
}

// Extract implements Strategy.
func (s *SelectorStrategy) Extract(page *Page) jobscrape.Fields {
	root := page.Root

	description := GetHTMLContent(FirstWithText(root, s.config.Description))
	if description == "" {
		description = ScanSection(root)
	}

	return jobscrape.Fields{
		Description: description,
		Title:       GetTextContent(root, s.config.Title),
		Company:     GetTextContent(root, s.config.Company),
		Location:    GetTextContent(root, s.config.Location),
	}
}
