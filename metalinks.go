package elementpager

import "fmt"

// MetaKind identifies a navigation link with jump semantics.
type MetaKind string

const (
	MetaFirst MetaKind = "first"
	MetaPrev  MetaKind = "prev"
	MetaNext  MetaKind = "next"
	MetaLast  MetaKind = "last"
)

// AllMetaKinds lists the meta-link kinds in toolbar iteration order.
var AllMetaKinds = []MetaKind{MetaFirst, MetaPrev, MetaNext, MetaLast}

func (k MetaKind) Valid() bool {
	switch k {
	case MetaFirst, MetaPrev, MetaNext, MetaLast:
		return true
	default:
		return false
	}
}

type optionalLink[N comparable] struct {
	link N
	set  bool
}

// metaLinks stores the optional first/prev/next/last handles.
type metaLinks[N comparable] struct {
	first optionalLink[N]
	prev  optionalLink[N]
	next  optionalLink[N]
	last  optionalLink[N]
}

func (m *metaLinks[N]) slot(kind MetaKind) *optionalLink[N] {
	switch kind {
	case MetaFirst:
		return &m.first
	case MetaPrev:
		return &m.prev
	case MetaNext:
		return &m.next
	case MetaLast:
		return &m.last
	default:
		panic(fmt.Errorf("unknown meta link kind '%s'", kind))
	}
}

func (m *metaLinks[N]) set(kind MetaKind, link N) {
	*m.slot(kind) = optionalLink[N]{link: link, set: true}
}

func (m *metaLinks[N]) get(kind MetaKind) (N, bool) {
	if !kind.Valid() {
		var zero N
		return zero, false
	}

	s := m.slot(kind)

	return s.link, s.set
}

// each calls fn for every registered link in AllMetaKinds order.
func (m *metaLinks[N]) each(fn func(kind MetaKind, link N)) {
	for _, kind := range AllMetaKinds {
		if link, ok := m.get(kind); ok {
			fn(kind, link)
		}
	}
}
