package goquery

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscrape"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// sectionTitles are the heading texts that open a job description section.
var sectionTitles = map[string]bool{
	"about the job":   true,
	"job description": true,
	"about the role":  true,
}

// headingCandidates are the elements a section title may be rendered in.
const headingCandidates = "h1, h2, h3, h4, h5, h6, strong, span"

// stopClasses mark application and footer controls that end a section.
var stopClasses = []string{
	"jobs-box__footer",
	"jobs-apply-button",
	"jobs-apply-button--top-card",
	"jobs-description__footer",
	"apply-button",
}

// maxScanNodes bounds the traversal on pathological documents.
const maxScanNodes = 200_000

var aboutLabelRe = regexp.MustCompile(`(?i)^about the job\s*[-:]?\s*`)

// ScanSection locates the first heading-like element whose text is a known
// section title and collects the text that follows it in document order,
// until a heading or an application/footer control is reached. Script and
// style subtrees are skipped. The result is HTML-escaped text, or an empty
// string when no marker is found or nothing follows it.
func ScanSection(root *goquery.Selection) string {
	if root == nil || root.Length() == 0 {
		return ""
	}

	marker := findSectionMarker(root)
	if marker == nil {
		return ""
	}

	s := &sectionScanner{marker: marker}
	for _, n := range root.Nodes {
		s.run(n)
	}

	text := jobscrape.NormalizeText(strings.Join(s.parts, " "))
	text = strings.TrimSpace(aboutLabelRe.ReplaceAllString(text, ""))
	if text == "" {
		return ""
	}
	return html.EscapeString(text)
}

// findSectionMarker returns the first candidate heading in document order
// whose normalized, lowercased text is a section title.
func findSectionMarker(root *goquery.Selection) *nethtml.Node {
	marker := root.Find(headingCandidates).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return sectionTitles[strings.ToLower(jobscrape.NormalizeText(s.Text()))]
	}).First()
	if marker.Length() == 0 {
		return nil
	}
	return marker.Get(0)
}

type scanState int

const (
	beforeMarker scanState = iota
	inCapture
	scanDone
)

// sectionScanner walks a tree in document order with an explicit stack.
type sectionScanner struct {
	marker  *nethtml.Node
	state   scanState
	parts   []string
	visited int
}

func (s *sectionScanner) run(root *nethtml.Node) {
	stack := []*nethtml.Node{root}
	for len(stack) > 0 && s.state != scanDone && s.visited < maxScanNodes {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		s.visited++

		if !s.visit(n) {
			continue
		}
		// Push children last-to-first so the first child is popped next.
		for c := n.LastChild; c != nil; c = c.PrevSibling {
			stack = append(stack, c)
		}
	}
}

// visit processes n and reports whether its children should be walked.
func (s *sectionScanner) visit(n *nethtml.Node) bool {
	if n.Type == nethtml.ElementNode && isSkipped(n) {
		return false
	}

	switch s.state {
	case beforeMarker:
		if n == s.marker {
			s.state = inCapture
			return false
		}
		return true
	case inCapture:
		if n.Type == nethtml.ElementNode && isStopBoundary(n) {
			s.state = scanDone
			return false
		}
		if n.Type == nethtml.TextNode {
			if text := jobscrape.NormalizeText(n.Data); text != "" {
				s.parts = append(s.parts, text)
			}
		}
		return true
	}
	return false
}

func isSkipped(n *nethtml.Node) bool {
	switch n.DataAtom {
	case atom.Script, atom.Style, atom.Noscript, atom.Template:
		return true
	}
	return false
}

// isStopBoundary reports whether n ends a captured section.
func isStopBoundary(n *nethtml.Node) bool {
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Footer:
		return true
	}
	return hasAnyClass(n, stopClasses)
}

func hasAnyClass(n *nethtml.Node, classes []string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			for _, want := range classes {
				if c == want {
					return true
				}
			}
		}
	}
	return false
}
