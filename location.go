package elementpager

import "strings"

// Placement is a toolbar placement keyword relative to the paginated elements.
type Placement string

const (
	PlacementBefore Placement = "before"
	PlacementAfter  Placement = "after"
)

// Valid reports whether p is a known keyword. Comparison is case-insensitive.
func (p Placement) Valid() bool {
	switch p.normalize() {
	case PlacementBefore, PlacementAfter:
		return true
	default:
		return false
	}
}

func (p Placement) normalize() Placement {
	return Placement(strings.ToLower(strings.TrimSpace(string(p))))
}

// Location tells the pager where to insert its toolbar: either a placement
// keyword or a concrete node that receives the toolbar as its last child.
// The zero value means "after the last element".
type Location[N comparable] struct {
	placement Placement
	node      N
	hasNode   bool
}

// LocationBefore places the toolbar before the first element.
func LocationBefore[N comparable]() Location[N] {
	return Location[N]{placement: PlacementBefore}
}

// LocationAfter places the toolbar after the last element.
func LocationAfter[N comparable]() Location[N] {
	return Location[N]{placement: PlacementAfter}
}

// LocationKeyword builds a location from a keyword. Unknown keywords are kept
// as-is and resolve to "after" when the toolbar is inserted.
func LocationKeyword[N comparable](keyword string) Location[N] {
	return Location[N]{placement: Placement(keyword)}
}

// LocationInside appends the toolbar to node. A zero node (e.g. nil) falls
// back to "after the last element".
func LocationInside[N comparable](node N) Location[N] {
	return Location[N]{node: node, hasNode: true}
}

// Node returns the container node, if the location is a concrete node.
func (l Location[N]) Node() (N, bool) {
	return l.node, l.hasNode
}

// Placement returns the keyword the location was built with.
func (l Location[N]) Placement() Placement {
	return l.placement
}

// resolve returns the effective keyword for non-node locations. Anything that
// is not "before" falls back to "after".
func (l Location[N]) resolve() Placement {
	if l.placement.normalize() == PlacementBefore {
		return PlacementBefore
	}

	return PlacementAfter
}
