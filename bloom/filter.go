// Package bloom provides probabilistic URL de-duplication for batch scrapes.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Filter remembers URLs it has seen. It is safe for concurrent use.
// False positives are possible, so a never-seen URL is occasionally
// reported as seen; false negatives are not.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records url.
func (f *Filter) Add(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(url)
}

// Test reports whether url might have been recorded.
func (f *Filter) Test(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(url)
}

// Visit records url and reports whether it was new.
func (f *Filter) Visit(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.f.TestOrAddString(url)
}
