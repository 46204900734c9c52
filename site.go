package jobscrape

import "strings"

// Site identifies the job board a page belongs to.
// The set is closed: every value returned by DetectSite is listed in Sites.
type Site string

// Supported job boards.
const (
	SiteLinkedIn      Site = "LinkedIn"
	SiteGoogleJobs    Site = "Google Jobs"
	SiteIndeed        Site = "Indeed"
	SiteMonster       Site = "Monster"
	SiteGlassdoor     Site = "Glassdoor"
	SiteCareerBuilder Site = "CareerBuilder"
	SiteDice          Site = "Dice"
	SiteDefault       Site = "Default"
)

// Sites returns every site tag in classification priority order,
// ending with SiteDefault.
func Sites() []Site {
	return []Site{
		SiteLinkedIn,
		SiteGoogleJobs,
		SiteIndeed,
		SiteMonster,
		SiteGlassdoor,
		SiteCareerBuilder,
		SiteDice,
		SiteDefault,
	}
}

// siteRule matches a URL when it contains every marker.
type siteRule struct {
	site    Site
	markers []string
}

// siteRules is evaluated in order; the first match wins.
var siteRules = []siteRule{
	{site: SiteLinkedIn, markers: []string{"linkedin.com"}},
	{site: SiteGoogleJobs, markers: []string{"google.com", "search"}},
	{site: SiteIndeed, markers: []string{"indeed.com"}},
	{site: SiteMonster, markers: []string{"monster.com"}},
	{site: SiteGlassdoor, markers: []string{"glassdoor.com"}},
	{site: SiteCareerBuilder, markers: []string{"careerbuilder.com"}},
	{site: SiteDice, markers: []string{"dice.com"}},
}

// DetectSite classifies a page URL by case-sensitive substring containment
// on the raw URL. Returns SiteDefault when no rule matches.
func DetectSite(url string) Site {
	for _, rule := range siteRules {
		if containsAll(url, rule.markers) {
			return rule.site
		}
	}
	return SiteDefault
}

func containsAll(s string, markers []string) bool {
	for _, m := range markers {
		if !strings.Contains(s, m) {
			return false
		}
	}
	return true
}
