package elementpager

// Tree is the UI tree capability used by Pager. The pager only dispatches
// intents to it and never depends on how the tree is mutated.
//
// Implementations must ignore empty class names.
type Tree[N comparable] interface {
	// CreateElement creates a detached element with the given tag and classes.
	CreateElement(tag string, classes ...string) N
	// SetText replaces the text content of n.
	SetText(n N, text string)
	AddClass(n N, class string)
	RemoveClass(n N, class string)
	// OnActivate attaches a click handler to n. The default action of the
	// activation (e.g. following href="#") is suppressed by the backend.
	OnActivate(n N, handler func())
	// AppendChild inserts child as the last child of parent.
	AppendChild(parent, child N)
	// InsertBefore inserts node as the previous sibling of ref.
	InsertBefore(ref, node N)
	// InsertAfter inserts node as the next sibling of ref.
	InsertAfter(ref, node N)
}

const (
	tagToolbar = "div"
	tagLink    = "a"
)
