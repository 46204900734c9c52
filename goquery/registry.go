package goquery

import (
	"sort"

	"github.com/fwojciec/jobscrape"
)

// Registry maps site tags to extraction strategies. Lookups for a site
// without a registered strategy return the fallback strategy.
type Registry struct {
	fallback   Strategy
	strategies map[jobscrape.Site]Strategy
}

// NewRegistry creates a new Registry with the given fallback strategy.
func NewRegistry(fallback Strategy) *Registry {
	return &Registry{
		fallback:   fallback,
		strategies: make(map[jobscrape.Site]Strategy),
	}
}

// DefaultRegistry returns a Registry with a strategy for every known site
// and a GenericStrategy fallback. extractor may be nil.
func DefaultRegistry(extractor jobscrape.Extractor) *Registry {
	generic := NewGenericStrategy(extractor)
	r := NewRegistry(generic)
	r.Register(jobscrape.SiteLinkedIn, NewLinkedInStrategy())
	r.Register(jobscrape.SiteGoogleJobs, NewGoogleJobsStrategy())
	r.Register(jobscrape.SiteIndeed, NewIndeedStrategy())
	r.Register(jobscrape.SiteMonster, NewMonsterStrategy())
	r.Register(jobscrape.SiteGlassdoor, NewGlassdoorStrategy())
	r.Register(jobscrape.SiteCareerBuilder, NewCareerBuilderStrategy())
	r.Register(jobscrape.SiteDice, NewDiceStrategy())
	r.Register(jobscrape.SiteDefault, generic)
	return r
}

// Get returns the strategy for a specific site.
// Returns nil if no strategy is registered for the site.
func (r *Registry) Get(site jobscrape.Site) Strategy {
	return r.strategies[site]
}

// GetForSite returns the strategy for site, or the fallback strategy.
func (r *Registry) GetForSite(site jobscrape.Site) Strategy {
	if strategy, ok := r.strategies[site]; ok {
		return strategy
	}
	return r.fallback
}

// Register adds a strategy for a site.
// If a strategy is already registered for the site, it is replaced.
func (r *Registry) Register(site jobscrape.Site, strategy Strategy) {
	r.strategies[site] = strategy
}

// List returns all registered sites in lexical order.
func (r *Registry) List() []jobscrape.Site {
	sites := make([]jobscrape.Site, 0, len(r.strategies))
	for s := range r.strategies {
		sites = append(sites, s)
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i] < sites[j] })
	return sites
}
