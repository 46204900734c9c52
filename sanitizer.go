package jobscrape

// Sanitizer reduces a raw markup fragment to safe structural markup.
type Sanitizer interface {
	// Sanitize never fails: malformed input degrades to whatever the
	// allow-list can salvage. Sanitize(Sanitize(x)) == Sanitize(x).
	Sanitize(html string) string
}
