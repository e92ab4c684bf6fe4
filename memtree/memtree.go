// Package memtree is an in-memory UI tree for elementpager. It is used to
// drive pagers outside a browser (tests, terminal programs) and can render a
// tree to the terminal with lipgloss.
package memtree

import (
	"slices"

	"github.com/samber/lo"
)

// Node is an element of the tree.
type Node struct {
	Tag  string
	Text string

	classes  []string
	parent   *Node
	children []*Node
	handlers []func()
}

// NewNode creates a detached node.
func NewNode(tag string, classes ...string) *Node {
	n := &Node{Tag: tag}
	for _, class := range classes {
		n.AddClass(class)
	}

	return n
}

// Classes returns the node classes in insertion order.
func (n *Node) Classes() []string {
	return slices.Clone(n.classes)
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.classes, class)
}

func (n *Node) AddClass(class string) {
	if class == "" || n.HasClass(class) {
		return
	}

	n.classes = append(n.classes, class)
}

func (n *Node) RemoveClass(class string) {
	n.classes = slices.DeleteFunc(n.classes, func(c string) bool {
		return c == class
	})
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Append inserts children at the end of n, detaching them first.
func (n *Node) Append(children ...*Node) *Node {
	for _, child := range children {
		child.detach()
		child.parent = n
		n.children = append(n.children, child)
	}

	return n
}

// Index returns the position of n among its siblings, or -1 when detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}

	return slices.Index(n.parent.children, n)
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}

	idx := n.Index()
	n.parent.children = slices.Delete(n.parent.children, idx, idx+1)
	n.parent = nil
}

// insertSibling inserts node next to n, before or after it.
func (n *Node) insertSibling(node *Node, after bool) {
	if n.parent == nil {
		return
	}

	node.detach()
	parent := n.parent
	idx := lo.Ternary(after, n.Index()+1, n.Index())
	parent.children = slices.Insert(parent.children, idx, node)
	node.parent = parent
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, child := range n.children {
		child.Walk(fn)
	}
}

// FindByClass returns the descendants of n (n included) carrying class, in
// document order.
func (n *Node) FindByClass(class string) []*Node {
	var ret []*Node
	n.Walk(func(node *Node) bool {
		if node.HasClass(class) {
			ret = append(ret, node)
		}

		return true
	})

	return ret
}

// Tree implements elementpager.Tree[*Node].
type Tree struct{}

func New() *Tree {
	return &Tree{}
}

func (t *Tree) CreateElement(tag string, classes ...string) *Node {
	return NewNode(tag, classes...)
}

func (t *Tree) SetText(n *Node, text string) {
	n.Text = text
}

func (t *Tree) AddClass(n *Node, class string) {
	n.AddClass(class)
}

func (t *Tree) RemoveClass(n *Node, class string) {
	n.RemoveClass(class)
}

func (t *Tree) OnActivate(n *Node, handler func()) {
	n.handlers = append(n.handlers, handler)
}

func (t *Tree) AppendChild(parent, child *Node) {
	parent.Append(child)
}

// InsertBefore is a no-op when ref has no parent.
func (t *Tree) InsertBefore(ref, node *Node) {
	ref.insertSibling(node, false)
}

// InsertAfter is a no-op when ref has no parent.
func (t *Tree) InsertAfter(ref, node *Node) {
	ref.insertSibling(node, true)
}

// Activate simulates a click on n and reports whether any handler ran.
func Activate(n *Node) bool {
	if n == nil || len(n.handlers) == 0 {
		return false
	}

	for _, handler := range slices.Clone(n.handlers) {
		handler()
	}

	return true
}
