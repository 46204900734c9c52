package jobscrape

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms sanitized description markup into Markdown
	// suitable for a text-generation prompt.
	Convert(html string) (string, error)
}
