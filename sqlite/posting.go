package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ jobscrape.HistoryService = (*HistoryService)(nil)
	_ jobscrape.PostingWriter  = (*HistoryService)(nil)
)

// HistoryService implements jobscrape.HistoryService using SQLite.
type HistoryService struct {
	db *DB

	// Now returns the time recorded as scraped_at.
	Now func() time.Time
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db, Now: time.Now}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

const postingColumns = "id, url, source, title, company, location, description, content_hash, scraped_at"

// SavePosting inserts p, or replaces the fields of the record with the
// same URL while keeping its ID.
func (s *HistoryService) SavePosting(ctx context.Context, p *jobscrape.JobPosting) (*jobscrape.StoredPosting, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	scrapedAt := s.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO postings (`+postingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET
			source = excluded.source,
			title = excluded.title,
			company = excluded.company,
			location = excluded.location,
			description = excluded.description,
			content_hash = excluded.content_hash,
			scraped_at = excluded.scraped_at
	`, uuid.New().String(), p.URL, string(p.Source),
		nullString(p.JobTitle), nullString(p.CompanyName), nullString(p.Location),
		p.JobDescriptionHTML, hashContent(p.JobDescriptionHTML), scrapedAt)
	if err != nil {
		return nil, err
	}

	return s.FindPostingByURL(ctx, p.URL)
}

// WritePosting records p, so the history can serve as a scrape output.
func (s *HistoryService) WritePosting(ctx context.Context, p *jobscrape.JobPosting) error {
	_, err := s.SavePosting(ctx, p)
	return err
}

// FindPostingByURL retrieves the record for url.
func (s *HistoryService) FindPostingByURL(ctx context.Context, url string) (*jobscrape.StoredPosting, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+postingColumns+" FROM postings WHERE url = ?", url)

	sp, err := scanPosting(row)
	if err == sql.ErrNoRows {
		return nil, jobscrape.Errorf(jobscrape.ENOTFOUND, "posting not found")
	}
	if err != nil {
		return nil, err
	}
	return sp, nil
}

// FindPostings retrieves records matching the filter, newest first.
func (s *HistoryService) FindPostings(ctx context.Context, filter jobscrape.PostingFilter) ([]*jobscrape.StoredPosting, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + postingColumns + " FROM postings WHERE 1=1")

	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, string(*filter.Source))
	}

	query.WriteString(" ORDER BY scraped_at DESC, url ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []*jobscrape.StoredPosting
	for rows.Next() {
		sp, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, sp)
	}

	return postings, rows.Err()
}

// DeletePosting permanently removes the record for url.
func (s *HistoryService) DeletePosting(ctx context.Context, url string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM postings WHERE url = ?", url)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return jobscrape.Errorf(jobscrape.ENOTFOUND, "posting not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPosting(row scanner) (*jobscrape.StoredPosting, error) {
	var (
		sp                       jobscrape.StoredPosting
		p                        jobscrape.JobPosting
		source, scrapedAt        string
		title, company, location sql.NullString
	)
	if err := row.Scan(&sp.ID, &p.URL, &source, &title, &company, &location,
		&p.JobDescriptionHTML, &sp.ContentHash, &scrapedAt); err != nil {
		return nil, err
	}

	t, err := parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}

	p.Source = jobscrape.Site(source)
	p.JobTitle = stringPtr(title)
	p.CompanyName = stringPtr(company)
	p.Location = stringPtr(location)
	sp.Posting = &p
	sp.ScrapedAt = t
	return &sp, nil
}
