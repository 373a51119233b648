// Package htmldoc wraps golang.org/x/net/html with the small set of
// structural queries the core needs: find-all-by-predicate, attribute
// access, ancestor traversal, and first-match-by-tag-and-class.
package htmldoc

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Node is one element in a parsed document.
type Node struct {
	n *html.Node
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document back out as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string. Render errors surface as an
// empty string; use Render when the error matters.
func (d *Document) String() string {
	var sb strings.Builder
	if err := d.Render(&sb); err != nil {
		return ""
	}
	return sb.String()
}

// FindAll returns every element node satisfying pred, in document order.
func (d *Document) FindAll(pred func(*Node) bool) []*Node {
	var found []*Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && pred(&Node{n: n}) {
			found = append(found, &Node{n: n})
		}
		return true
	})
	return found
}

// Find returns the first element node satisfying pred, or nil.
func (d *Document) Find(pred func(*Node) bool) *Node {
	var found *Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && pred(&Node{n: n}) {
			found = &Node{n: n}
			return false
		}
		return true
	})
	return found
}

// First returns the first element with the given tag carrying the given
// class token, or nil. An empty class matches any element of the tag.
func (d *Document) First(tag, class string) *Node {
	return d.Find(func(n *Node) bool {
		return n.Tag() == tag && (class == "" || n.HasClass(class))
	})
}

// AppendHeadComment appends a comment node with the given text inside
// the document's head element. Documents parsed by this package always
// have a head: the parser synthesises one.
func (d *Document) AppendHeadComment(text string) {
	var head *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "head" {
			head = n
			return false
		}
		return true
	})
	if head == nil {
		head = d.root
	}
	head.AppendChild(&html.Node{Type: html.CommentNode, Data: text})
}

// SetHeadComment updates the first comment whose text starts with
// prefix, or appends a new head comment when none exists. Used for
// out-of-band markers embedded in rendered documents.
func (d *Document) SetHeadComment(prefix, text string) {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.CommentNode && strings.HasPrefix(n.Data, prefix) {
			found = n
			return false
		}
		return true
	})
	if found != nil {
		found.Data = text
		return
	}
	d.AppendHeadComment(text)
}

// Comment returns the text of the first comment node whose text starts
// with prefix.
func (d *Document) Comment(prefix string) (string, bool) {
	var text string
	var ok bool
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.CommentNode && strings.HasPrefix(n.Data, prefix) {
			text, ok = n.Data, true
			return false
		}
		return true
	})
	return text, ok
}

// walk visits n and its descendants depth-first. The visitor returns
// false to stop the walk.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

// Tag returns the element's tag name.
func (n *Node) Tag() string {
	return n.n.Data
}

// Attr returns the named attribute's value and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Class returns the element's raw class attribute.
func (n *Node) Class() string {
	c, _ := n.Attr("class")
	return c
}

// HasClass reports whether the element's class attribute contains the
// given class token.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Class()) {
		if c == class {
			return true
		}
	}
	return false
}

// Parent returns the element's nearest element ancestor, or nil.
func (n *Node) Parent() *Node {
	for p := n.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return &Node{n: p}
		}
	}
	return nil
}

// Ancestor walks up the element's ancestors and returns the first one
// satisfying pred, or nil.
func (n *Node) Ancestor(pred func(*Node) bool) *Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if pred(p) {
			return p
		}
	}
	return nil
}

// Descendant returns the element's first descendant with the given tag,
// or nil.
func (n *Node) Descendant(tag string) *Node {
	var found *Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, func(m *html.Node) bool {
			if m.Type == html.ElementNode && m.Data == tag {
				found = &Node{n: m}
				return false
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return found
}

// Text returns the node's concatenated text content, trimmed.
func (n *Node) Text() string {
	var sb strings.Builder
	walk(n.n, func(m *html.Node) bool {
		if m.Type == html.TextNode {
			sb.WriteString(m.Data)
		}
		return true
	})
	return strings.TrimSpace(sb.String())
}

// Same reports whether two handles refer to the same underlying node.
func (n *Node) Same(o *Node) bool {
	return o != nil && n.n == o.n
}
