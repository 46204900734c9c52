// Package fs writes scraped postings as Markdown files with YAML front
// matter.
package fs

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobscrape"
	"gopkg.in/yaml.v3"
)

var nonSlugRe = regexp.MustCompile(`[^a-z0-9]+`)

// maxSlugLen caps the readable part of a file name.
const maxSlugLen = 60

// ContentHash returns the hex xxhash of content.
func ContentHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// PostingPath returns the relative file path of a posting:
// <source>/<last URL path segment>-<URL hash>.md. Query and fragment only
// contribute to the hash, so Google Jobs panels of one search don't
// collide.
// Example: https://www.linkedin.com/jobs/view/123 → linkedin/123-<hash>.md
func PostingPath(p *jobscrape.JobPosting) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	u, err := url.Parse(p.URL)
	if err != nil {
		return "", jobscrape.Errorf(jobscrape.EINVALID, "invalid posting URL: %v", err)
	}

	dir := slug(string(p.Source))
	if dir == "" {
		dir = "default"
	}
	name := slug(path.Base(u.Path))
	if name == "" {
		name = "posting"
	}

	return filepath.Join(dir, name+"-"+ContentHash(p.URL)[:8]+".md"), nil
}

func slug(s string) string {
	s = nonSlugRe.ReplaceAllString(strings.ToLower(s), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

// frontMatter is the YAML header of a posting file.
type frontMatter struct {
	URL         string `yaml:"url"`
	Title       string `yaml:"title,omitempty"`
	Company     string `yaml:"company,omitempty"`
	Location    string `yaml:"location,omitempty"`
	Source      string `yaml:"source"`
	Scraped     string `yaml:"scraped"`
	ContentHash string `yaml:"contentHash"`
}

// FormatPosting formats a posting with YAML front matter followed by body.
// The content hash covers the sanitized description markup.
func FormatPosting(p *jobscrape.JobPosting, body string, scraped time.Time) (string, error) {
	header, err := yaml.Marshal(frontMatter{
		URL:         p.URL,
		Title:       p.Title(),
		Company:     p.Company(),
		Location:    p.Place(),
		Source:      string(p.Source),
		Scraped:     scraped.Format("2006-01-02"),
		ContentHash: ContentHash(p.JobDescriptionHTML),
	})
	if err != nil {
		return "", fmt.Errorf("marshal front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	b.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}

// ParseFrontMatter reads the YAML header of a posting file back into a
// posting. The description is not restored.
func ParseFrontMatter(content string) (*jobscrape.JobPosting, string, error) {
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return nil, "", jobscrape.Errorf(jobscrape.EINVALID, "missing front matter")
	}
	header, _, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return nil, "", jobscrape.Errorf(jobscrape.EINVALID, "unterminated front matter")
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
		return nil, "", jobscrape.Errorf(jobscrape.EINVALID, "invalid front matter: %v", err)
	}

	return &jobscrape.JobPosting{
		URL:         fm.URL,
		JobTitle:    jobscrape.Optional(fm.Title),
		CompanyName: jobscrape.Optional(fm.Company),
		Location:    jobscrape.Optional(fm.Location),
		Source:      jobscrape.Site(fm.Source),
	}, fm.ContentHash, nil
}
