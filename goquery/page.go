package goquery

import "github.com/PuerkitoBio/goquery"

// Page is the input of a site strategy. Root is the nominal content subtree
// (the body); Document is the full tree for boards that render their content
// outside of it.
type Page struct {
	URL      string
	Document *goquery.Document
	Root     *goquery.Selection
}

// NewPage wraps a parsed document, using its body as the root.
// Falls back to the whole document when there is no body element.
func NewPage(url string, doc *goquery.Document) *Page {
	root := doc.Find("body").First()
	if root.Length() == 0 {
		root = doc.Selection
	}
	return &Page{URL: url, Document: doc, Root: root}
}
