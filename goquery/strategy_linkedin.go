package goquery

import "github.com/fwojciec/jobscrape"

var _ Strategy = (*LinkedInStrategy)(nil)

// LinkedInStrategy extracts LinkedIn job views. LinkedIn's markup changes
// often, so the description comes from the section heading scan first and
// the known content containers second.
type LinkedInStrategy struct{}

// NewLinkedInStrategy creates a new LinkedInStrategy.
func NewLinkedInStrategy() *LinkedInStrategy {
	return &LinkedInStrategy{}
}

// Site returns jobscrape.SiteLinkedIn.
func (s *LinkedInStrategy) Site() jobscrape.Site {
	return jobscrape.SiteLinkedIn
}

var linkedInConfig = SelectorConfig{
	Description: []string{
		".jobs-description__content",
		".jobs-details__main-content",
		".jobs-box__html-content",
		".description__text",
	},
	Title: []string{
		".jobs-unified-top-card__job-title",
		".job-details-jobs-unified-top-card__job-title",
		"h1[data-test-job-title]",
		".top-card-layout__title",
		"h1",
		".job-title",
	},
	Company: []string{
		".jobs-unified-top-card__company-name a",
		".jobs-unified-top-card__company-name",
		".job-details-jobs-unified-top-card__company-name",
		".topcard__org-name-link",
		".jobs-details-top-card__company-info a",
		".company-name",
		".employer-name",
	},
	Location: []string{
		".jobs-unified-top-card__bullet",
		".jobs-unified-top-card__primary-description",
		".jobs-unified-top-card__subtitle-primary-group span",
		".topcard__flavor--bullet",
		".job-location",
		".location",
	},
}

// Extract implements Strategy.
func (s *LinkedInStrategy) Extract(page *Page) jobscrape.Fields {
	root := page.Root

	description := ScanSection(root)
	if description == "" {
		description = GetHTMLContent(FirstWithText(root, linkedInConfig.Description))
	}

	return jobscrape.Fields{
		Description: description,
		Title:       GetTextContent(root, linkedInConfig.Title),
		Company:     GetTextContent(root, linkedInConfig.Company),
		Location:    GetTextContent(root, linkedInConfig.Location),
	}
}
