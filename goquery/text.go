package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscrape"
)

// GetTextContent tries each selector in order against root and returns the
// normalized text of the first matching element whose text is non-empty.
// Returns an empty string when no candidate yields text. Invalid selectors
// match nothing.
func GetTextContent(root *goquery.Selection, selectors []string) string {
	sel := FirstWithText(root, selectors)
	if sel == nil {
		return ""
	}
	return jobscrape.NormalizeText(sel.Text())
}

// GetHTMLContent returns the trimmed inner HTML of the first element in sel,
// or an empty string when sel is empty.
func GetHTMLContent(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	html, err := sel.First().Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(html)
}

// FirstWithText returns the first element, in selector order and then
// document order, whose normalized text is non-empty. Returns nil if none.
func FirstWithText(root *goquery.Selection, selectors []string) *goquery.Selection {
	if root == nil {
		return nil
	}
	for _, selector := range selectors {
		var found *goquery.Selection
		root.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if jobscrape.NormalizeText(s.Text()) != "" {
				found = s
				return false
			}
			return true
		})
		if found != nil {
			return found
		}
	}
	return nil
}
