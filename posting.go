package jobscrape

// JobPosting is the canonical record produced by one scrape.
// Optional fields are nil when no candidate element held non-empty text.
type JobPosting struct {
	URL                string  `json:"url"`
	JobDescriptionHTML string  `json:"jobDescriptionHtml"`
	JobTitle           *string `json:"jobTitle"`
	CompanyName        *string `json:"companyName"`
	Location           *string `json:"location"`
	Source             Site    `json:"source"`
}

// Validate returns an error if the posting contains invalid fields.
func (p *JobPosting) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "posting URL required")
	}
	if p.Source == "" {
		return Errorf(EINVALID, "posting source required")
	}
	return nil
}

// Title returns the job title or an empty string when absent.
func (p *JobPosting) Title() string { return deref(p.JobTitle) }

// Company returns the company name or an empty string when absent.
func (p *JobPosting) Company() string { return deref(p.CompanyName) }

// Place returns the location or an empty string when absent.
func (p *JobPosting) Place() string { return deref(p.Location) }

// Fields holds the raw output of a site extraction strategy.
// Title, Company and Location are already normalized; an empty string
// means absent. Description is unsanitized markup.
type Fields struct {
	Description string
	Title       string
	Company     string
	Location    string
}

// Optional returns a pointer to the normalized value, or nil when the
// normalized value is empty.
func Optional(value string) *string {
	v := NormalizeText(value)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ScrapeResponse is the envelope returned to the caller of a scrape
// request. Exactly one of Payload and Error is set.
type ScrapeResponse struct {
	Success bool        `json:"success"`
	Payload *JobPosting `json:"payload,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewScrapeResponse builds the envelope for a scrape outcome.
// A non-nil err always produces a failed response carrying only its message.
func NewScrapeResponse(posting *JobPosting, err error) *ScrapeResponse {
	if err != nil {
		msg := ErrorMessage(err)
		if msg == "" {
			msg = "Unknown error"
		}
		return &ScrapeResponse{Error: msg}
	}
	return &ScrapeResponse{Success: true, Payload: posting}
}
