package browser

import (
	"strings"

	"golang.org/x/net/html"
)

// walk visits n and its descendants depth-first. Returning true from fn skips the node's children.
func walk(n *html.Node, fn func(*html.Node) bool) {
	if fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(root *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(root, func(n *html.Node) bool {
		if found != nil {
			return true
		}
		if match(n) {
			found = n
			return true
		}
		return false
	})
	return found
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// separated elements start on a new visual cell or line; their text is kept apart.
var separated = map[string]bool{
	"br": true, "p": true, "div": true, "li": true, "tr": true, "td": true, "th": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"table": true, "thead": true, "tbody": true, "ul": true, "ol": true, "form": true,
}

var hidden = map[string]bool{"script": true, "style": true, "head": true, "template": true}

// textContent approximates rendered text: hidden elements are skipped and
// whitespace is collapsed to single spaces.
func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) bool {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			if c != n && hidden[c.Data] {
				return true
			}
			if separated[c.Data] {
				sb.WriteByte(' ')
			}
		}
		return false
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}
