package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed reference document with an id index.
type Document struct {
	root    *html.Node
	ids     map[string]*html.Node
	queries *QueryCache
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return newDocument(root), nil
}

// ParseBytes parses an in-memory document.
func ParseBytes(data []byte) (*Document, error) {
	return Parse(bytes.NewReader(data))
}

// Load reads and parses the document at path.
func Load(path string) (*Document, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := ParseBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, data, nil
}

func newDocument(root *html.Node) *Document {
	d := &Document{
		root:    root,
		ids:     make(map[string]*html.Node),
		queries: NewQueryCache(),
	}
	d.index(root)
	return d
}

// index records the first element for every id, in document order.
func (d *Document) index(n *html.Node) {
	if n.Type == html.ElementNode {
		if id, ok := Attr(n, "id"); ok && id != "" {
			if _, seen := d.ids[id]; !seen {
				d.ids[id] = n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.index(c)
	}
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Queries returns the document's query cache.
func (d *Document) Queries() *QueryCache { return d.queries }

// ByID returns the element with the given id, or nil.
func (d *Document) ByID(id string) *html.Node {
	return d.ids[id]
}

// All returns every descendant of n matching the constant selector query.
func (d *Document) All(n *html.Node, query string) []*html.Node {
	return d.queries.All(n, query)
}

// First returns the first descendant of n matching the constant selector query.
func (d *Document) First(n *html.Node, query string) *html.Node {
	return d.queries.First(n, query)
}

// Attr returns the value of the named attribute.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n carries the given class.
func HasClass(n *html.Node, class string) bool {
	v, ok := Attr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Describe renders a short element label such as `h4#texture-sample` for error messages.
func Describe(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	if n.Type != html.ElementNode {
		return "#text"
	}
	if id, ok := Attr(n, "id"); ok && id != "" {
		return n.Data + "#" + id
	}
	return n.Data
}
