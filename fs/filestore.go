package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/jobscrape"
)

// Ensure FileStore implements jobscrape.PostingStore at compile time.
var _ jobscrape.PostingStore = (*FileStore)(nil)

// FileStore implements jobscrape.PostingStore with atomic update semantics.
// Postings are saved to a temporary directory, then moved atomically on
// Commit, so a batch that fails halfway leaves the previous output intact.
type FileStore struct {
	baseDir   string
	name      string
	converter jobscrape.Converter
	now       time.Time
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string, converter jobscrape.Converter) *FileStore {
	return &FileStore{
		baseDir:   baseDir,
		name:      name,
		converter: converter,
		now:       time.Now(),
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes p into the temporary directory. A posting already committed
// with the same content keeps its earlier file.
func (s *FileStore) Save(ctx context.Context, p *jobscrape.JobPosting) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return writePosting(s.tempDir(), s.finalDir(), p, s.converter, s.now)
}

// Commit replaces the output directory with the saved postings.
func (s *FileStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved postings.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
