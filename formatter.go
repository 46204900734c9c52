package jobscrape

import "strings"

// FormatPosting renders a posting as the job context block of a
// text-generation prompt. descriptionMarkdown is the converted description;
// absent fields are omitted. Falls back to the URL when nothing else is known.
func FormatPosting(p *JobPosting, descriptionMarkdown string) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("## Job Context\n")
	writeLine(&b, "Position", p.Title())
	writeLine(&b, "Company", p.Company())
	writeLine(&b, "Location", p.Place())
	writeLine(&b, "Source", string(p.Source))
	writeLine(&b, "URL", p.URL)

	if desc := NormalizeDescription(descriptionMarkdown); desc != "" {
		b.WriteString("\n## Job Description\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	return b.String()
}

func writeLine(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("- ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}
