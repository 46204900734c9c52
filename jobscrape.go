// Package jobscrape extracts structured job-posting records from the
// rendered document of a job listing page. It classifies the page URL into
// a known job board, runs that board's field extraction strategy, sanitizes
// the description markup, and returns a canonical JobPosting.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bluemonday/, rod/).
package jobscrape
