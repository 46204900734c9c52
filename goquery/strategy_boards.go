package goquery

import "github.com/fwojciec/jobscrape"

// NewIndeedStrategy creates the strategy for Indeed job views.
func NewIndeedStrategy() *SelectorStrategy {
	return NewSelectorStrategy(jobscrape.SiteIndeed, SelectorConfig{
		Description: []string{
			"#jobDescriptionText",
			".jobsearch-JobComponent-description",
		},
		Title: []string{
			"h1.jobsearch-JobInfoHeader-title",
			`[data-testid="jobsearch-JobInfoHeader-title"]`,
			"h1",
		},
		Company: []string{
			`[data-testid="inlineHeader-companyName"]`,
			`[data-company-name="true"]`,
			".jobsearch-InlineCompanyRating div",
		},
		Location: []string{
			`[data-testid="inlineHeader-companyLocation"]`,
			`[data-testid="job-location"]`,
			".jobsearch-JobInfoHeader-subtitle div:last-child",
		},
	})
}

// NewMonsterStrategy creates the strategy for Monster job views.
func NewMonsterStrategy() *SelectorStrategy {
	return NewSelectorStrategy(jobscrape.SiteMonster, SelectorConfig{
		Description: []string{
			`[data-testid="svx-description-container-inner"]`,
			".job-description",
			"#JobDescription",
		},
		Title: []string{
			`[data-testid="jobTitle"]`,
			".job_title",
			"h1",
		},
		Company: []string{
			`[data-testid="company"]`,
			".company-name",
		},
		Location: []string{
			`[data-testid="jobDetailLocation"]`,
			".location",
		},
	})
}

// NewGlassdoorStrategy creates the strategy for Glassdoor job views.
func NewGlassdoorStrategy() *SelectorStrategy {
	return NewSelectorStrategy(jobscrape.SiteGlassdoor, SelectorConfig{
		Description: []string{
			`[class*="JobDetails_jobDescription"]`,
			".jobDescriptionContent",
			"#JobDescriptionContainer",
		},
		Title: []string{
			`[data-test="job-title"]`,
			`[class*="JobDetails_jobTitle"]`,
			"h1",
		},
		Company: []string{
			`[data-test="employer-name"]`,
			`[class*="EmployerProfile_employerName"]`,
		},
		Location: []string{
			`[data-test="location"]`,
			`[class*="JobDetails_location"]`,
		},
	})
}

// NewCareerBuilderStrategy creates the strategy for CareerBuilder job views.
func NewCareerBuilderStrategy() *SelectorStrategy {
	return NewSelectorStrategy(jobscrape.SiteCareerBuilder, SelectorConfig{
		Description: []string{
			"#jdp_description",
			".jdp-description-details",
			".job-description",
		},
		Title: []string{
			".jdp_title_header",
			"h1",
		},
		Company: []string{
			".job-company-name",
			".data-details span:first-child",
		},
		Location: []string{
			".job-location",
			".data-details span:nth-child(2)",
		},
	})
}

// NewDiceStrategy creates the strategy for Dice job views.
func NewDiceStrategy() *SelectorStrategy {
	return NewSelectorStrategy(jobscrape.SiteDice, SelectorConfig{
		Description: []string{
			`[data-testid="jobDescriptionHtml"]`,
			"#jobDescription",
			".job-description",
		},
		Title: []string{
			`[data-cy="jobTitle"]`,
			"h1",
		},
		Company: []string{
			`[data-cy="companyNameLink"]`,
			`[data-cy="companyName"]`,
		},
		Location: []string{
			`[data-cy="location"]`,
			".location",
		},
	})
}
