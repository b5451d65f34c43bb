package linkedin

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// hidden matches the visible copy of a LinkedIn label. Every label is rendered
// twice, once for screen readers and once marked aria-hidden for display.
const hidden = "span[aria-hidden='true']"

// text joins the trimmed, non-empty text nodes under the first node of s with sep.
func text(s *goquery.Selection, sep string) string {
	if s.Length() == 0 {
		return ""
	}
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(s.Nodes[0])
	return strings.Join(parts, sep)
}

// field returns the text of the first match of selector under s, or nil when
// nothing matches. A match with no text yields an empty string.
func field(s *goquery.Selection, selector, sep string) *string {
	m := s.Find(selector).First()
	if m.Length() == 0 {
		return nil
	}
	t := text(m, sep)
	return &t
}

// href returns the href of the first match of selector under s.
func href(s *goquery.Selection, selector string) *string {
	if v, ok := s.Find(selector).First().Attr("href"); ok {
		return &v
	}
	return nil
}

// ownString returns the lone string of n, descending through elements that have
// exactly one child. Elements with mixed content have none.
func ownString(n *html.Node) (string, bool) {
	for n != nil {
		if n.Type == html.TextNode {
			return n.Data, true
		}
		if n.FirstChild == nil || n.FirstChild != n.LastChild {
			return "", false
		}
		n = n.FirstChild
	}
	return "", false
}

func ptr(s string) *string { return &s }

// nonEmpty returns nil for blank strings.
func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func trim(s string) string { return strings.TrimSpace(s) }
