// Package htmltree adapts golang.org/x/net/html documents to elementpager.
//
// Elements are *html.Node values, classes live in the "class" attribute and
// links are rendered as <a href="#">. Click handlers cannot be serialized, so
// the Document keeps them per node and dispatches them through Activate.
package htmltree

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const classAttr = "class"

// Document is an HTML document that implements elementpager.Tree[*html.Node].
type Document struct {
	root     *html.Node
	handlers map[*html.Node][]func()
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html document: %w", err)
	}

	return NewDocument(root), nil
}

// NewDocument wraps an already parsed tree.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:     root,
		handlers: make(map[*html.Node][]func()),
	}
}

func (d *Document) Root() *html.Node {
	return d.root
}

// Select returns the element nodes matching a CSS selector in document order.
// Invalid selectors match nothing.
func (d *Document) Select(selector string) []*html.Node {
	return goquery.NewDocumentFromNode(d.root).Find(selector).Nodes
}

// Render serializes the document.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("failed to render html document: %w", err)
	}

	return nil
}

// Activate dispatches a click on n and reports whether any handler ran.
func (d *Document) Activate(n *html.Node) bool {
	handlers := d.handlers[n]
	if len(handlers) == 0 {
		return false
	}

	for _, handler := range slices.Clone(handlers) {
		handler()
	}

	return true
}

func (d *Document) CreateElement(tag string, classes ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if n.DataAtom == atom.A {
		selection(n).SetAttr("href", "#")
	}
	for _, class := range classes {
		d.AddClass(n, class)
	}

	return n
}

func (d *Document) SetText(n *html.Node, text string) {
	selection(n).SetText(text)
}

func (d *Document) AddClass(n *html.Node, class string) {
	if strings.TrimSpace(class) == "" {
		return
	}

	selection(n).AddClass(class)
}

// RemoveClass drops class from n. The class attribute is removed once it is
// empty.
func (d *Document) RemoveClass(n *html.Node, class string) {
	// An empty argument would make goquery drop every class.
	if strings.TrimSpace(class) == "" {
		return
	}

	selection(n).RemoveClass(class)
}

func (d *Document) OnActivate(n *html.Node, handler func()) {
	d.handlers[n] = append(d.handlers[n], handler)
}

func (d *Document) AppendChild(parent, child *html.Node) {
	detach(child)
	parent.AppendChild(child)
}

// InsertBefore is a no-op when ref has no parent.
func (d *Document) InsertBefore(ref, node *html.Node) {
	if ref.Parent == nil {
		return
	}

	detach(node)
	ref.Parent.InsertBefore(node, ref)
}

// InsertAfter is a no-op when ref has no parent.
func (d *Document) InsertAfter(ref, node *html.Node) {
	if ref.Parent == nil {
		return
	}

	detach(node)
	ref.Parent.InsertBefore(node, ref.NextSibling)
}

// Classes returns the classes of n in attribute order.
func Classes(n *html.Node) []string {
	return strings.Fields(selection(n).AttrOr(classAttr, ""))
}

func HasClass(n *html.Node, class string) bool {
	return selection(n).HasClass(class)
}

// Text returns the concatenated text content of n.
func Text(n *html.Node) string {
	return selection(n).Text()
}

func selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

func detach(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
