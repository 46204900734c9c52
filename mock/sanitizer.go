package mock

import "github.com/fwojciec/jobscrape"

var _ jobscrape.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of jobscrape.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
