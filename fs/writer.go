package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/jobscrape"
)

// Ensure Writer implements jobscrape.PostingWriter at compile time.
var _ jobscrape.PostingWriter = (*Writer)(nil)

// Writer writes postings as Markdown files to a directory.
type Writer struct {
	baseDir   string
	converter jobscrape.Converter

	// Now returns the scrape date written to the front matter.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
// Descriptions are converted with converter; a nil converter writes the
// sanitized markup as is.
func NewWriter(baseDir string, converter jobscrape.Converter) *Writer {
	return &Writer{baseDir: baseDir, converter: converter, Now: time.Now}
}

// WritePosting writes a posting to disk, replacing any earlier file for
// the same URL. A file that already holds the same posting is left as is,
// keeping its scrape date.
func (w *Writer) WritePosting(ctx context.Context, p *jobscrape.JobPosting) error {
	return writePosting(w.baseDir, w.baseDir, p, w.converter, w.Now())
}

// writePosting writes p below dir. When prevDir holds a file for p with
// the same fields and description, its content is reused.
func writePosting(dir, prevDir string, p *jobscrape.JobPosting, converter jobscrape.Converter, now time.Time) error {
	relPath, err := PostingPath(p)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(dir, relPath)

	content, ok := unchanged(filepath.Join(prevDir, relPath), p)
	if ok && prevDir == dir {
		return nil
	}
	if !ok {
		body := p.JobDescriptionHTML
		if converter != nil {
			if body, err = converter.Convert(p.JobDescriptionHTML); err != nil {
				return err
			}
		}
		if content, err = FormatPosting(p, body, now); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// unchanged returns the content of the posting file at path when it
// already holds p.
func unchanged(path string, p *jobscrape.JobPosting) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	prev, hash, err := ParseFrontMatter(string(data))
	if err != nil || hash != ContentHash(p.JobDescriptionHTML) {
		return "", false
	}
	if prev.URL != p.URL || prev.Source != p.Source ||
		prev.Title() != p.Title() || prev.Company() != p.Company() || prev.Place() != p.Place() {
		return "", false
	}
	return string(data), true
}
