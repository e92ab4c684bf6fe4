package elementpager

import (
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
)

// Pager shows a fixed sequence of elements page by page.
//
// A Pager is built once by New and then only changes page through ShowPage
// (directly, or through its toolbar links). It is not safe for concurrent use;
// like any UI widget it is driven from a single event loop.
type Pager[N comparable] struct {
	tree     Tree[N]
	elements []N
	options  Options[N]
	events   Events[N]
	logger   *log.Logger

	active       bool
	itemsPerPage int
	pageCount    int
	currentPage  int

	toolbar   N
	pageLinks []N
	metaLinks metaLinks[N]
}

// New creates a pager over elements, builds its toolbar and shows the first
// page. A nil opts means DefaultOptions.
//
// When there are no elements, or all of them fit on a single page, the pager
// is inactive: nothing is inserted into the tree, no event fires and every
// method is a no-op.
func New[N comparable](tree Tree[N], elements []N, opts *Options[N]) *Pager[N] {
	if opts == nil {
		opts = DefaultOptions[N]()
	}

	p := &Pager[N]{
		tree:         tree,
		elements:     slices.Clone(elements),
		options:      *opts,
		events:       opts.Events.clone(),
		logger:       lo.Ternary(opts.Logger != nil, opts.Logger, log.Default()),
		itemsPerPage: NormalizeItemsPerPage(opts.ItemsPerPage),
	}
	p.options.Events = Events[N]{}

	if tree == nil || len(p.elements) == 0 || len(p.elements) <= p.itemsPerPage {
		p.logger.Debug("pagination skipped",
			"elements", len(p.elements),
			"itemsPerPage", p.itemsPerPage,
		)

		return p
	}

	p.active = true
	p.buildToolbar()
	p.events.fireInit(p)
	p.ShowPage(0)

	return p
}

// buildToolbar creates the meta-links and numbered links and inserts the
// toolbar into the tree.
func (p *Pager[N]) buildToolbar() {
	toolbarOpts := p.options.Toolbar

	toolbar := p.tree.CreateElement(tagToolbar, toolbarOpts.CSSClass)
	linkContainer := p.tree.CreateElement(tagToolbar, toolbarOpts.LinkContainerClass)

	p.pageCount = PageCount(len(p.elements), p.itemsPerPage)

	if toolbarOpts.ShowFirstLast {
		p.addMetaLink(toolbar, MetaFirst, func() { p.ShowPage(0) })
		p.addMetaLink(toolbar, MetaLast, func() { p.ShowPage(p.pageCount - 1) })
	}

	if toolbarOpts.ShowNextPrevious {
		p.addMetaLink(toolbar, MetaPrev, func() { p.ShowPage(p.currentPage - 1) })
		p.addMetaLink(toolbar, MetaNext, func() { p.ShowPage(p.currentPage + 1) })
	}

	p.pageLinks = lo.Times(p.pageCount, func(index int) N {
		link := p.newLink(strconv.Itoa(index+1), func() { p.ShowPage(index) })
		p.tree.AppendChild(linkContainer, link)

		return link
	})
	p.tree.AppendChild(toolbar, linkContainer)

	p.insertToolbar(toolbar)
	p.toolbar = toolbar
}

func (p *Pager[N]) newLink(text string, onActivate func(), classes ...string) N {
	link := p.tree.CreateElement(tagLink, classes...)
	p.tree.SetText(link, text)
	p.tree.OnActivate(link, onActivate)

	return link
}

func (p *Pager[N]) addMetaLink(toolbar N, kind MetaKind, onActivate func()) {
	link := p.newLink(p.options.Links.Labels.label(kind), onActivate, string(kind))
	p.tree.AppendChild(toolbar, link)
	p.metaLinks.set(kind, link)
}

func (p *Pager[N]) insertToolbar(toolbar N) {
	location := p.options.Toolbar.Location
	if node, ok := location.Node(); ok {
		if !lo.IsEmpty(node) {
			p.tree.AppendChild(node, toolbar)
			return
		}

		p.logger.Debug("empty toolbar container, using default",
			"default", PlacementAfter,
		)
	}

	if keyword := location.Placement(); keyword != "" && !keyword.Valid() {
		p.logger.Debug("unknown toolbar location, using default",
			"location", keyword,
			"default", PlacementAfter,
		)
	}

	switch location.resolve() {
	case PlacementBefore:
		p.tree.InsertBefore(p.elements[0], toolbar)
	default:
		p.tree.InsertAfter(p.elements[len(p.elements)-1], toolbar)
	}
}

// GetPageElements returns the elements of the given page. The page number is
// clamped into range; the last page may hold fewer than ItemsPerPage elements.
func (p *Pager[N]) GetPageElements(page int) []N {
	if !p.IsActive() {
		return nil
	}

	start, end := PageBounds(page, p.itemsPerPage, len(p.elements))

	return slices.Clone(lo.Slice(p.elements, start, end))
}

// LimitPageNumber resolves v to a valid page index. See the package-level
// LimitPageNumber for the rules.
func (p *Pager[N]) LimitPageNumber(v any) int {
	if !p.IsActive() {
		return 0
	}

	return LimitPageNumber(v, p.pageCount)
}

// ShowPage displays the given page and hides every other element.
//
// The page number is clamped into range. The full transition always runs,
// even if the page does not change: beforeChange fires, every element and
// link is re-rendered, then afterChange fires.
func (p *Pager[N]) ShowPage(page int) {
	if !p.IsActive() {
		return
	}

	page = NormalizePage(page, p.pageCount)

	p.events.fireChange(EventBeforeChange, p, page)

	visible := p.GetPageElements(page)

	hideClass := p.options.HideClass
	lo.ForEach(p.elements, func(element N, _ int) {
		p.tree.AddClass(element, hideClass)
	})
	lo.ForEach(visible, func(element N, _ int) {
		p.tree.RemoveClass(element, hideClass)
	})

	currentClass := p.options.Links.CurrentClass
	lo.ForEach(p.pageLinks, func(link N, _ int) {
		p.tree.RemoveClass(link, currentClass)
	})
	p.tree.AddClass(p.pageLinks[page], currentClass)

	disabledClass := p.options.Links.DisabledClass
	p.metaLinks.each(func(_ MetaKind, link N) {
		p.tree.RemoveClass(link, disabledClass)
	})
	if page == 0 {
		p.disableMetaLinks(MetaFirst, MetaPrev)
	}
	if page == p.pageCount-1 {
		p.disableMetaLinks(MetaLast, MetaNext)
	}

	p.currentPage = page

	p.logger.Debug("page shown",
		"page", page,
		"pageCount", p.pageCount,
		"visible", len(visible),
	)

	p.events.fireChange(EventAfterChange, p, page)
}

// ShowPageValue is ShowPage for untyped input: non-numeric values show the
// first page.
func (p *Pager[N]) ShowPageValue(v any) {
	if !p.IsActive() {
		return
	}

	p.ShowPage(p.LimitPageNumber(v))
}

func (p *Pager[N]) disableMetaLinks(kinds ...MetaKind) {
	for _, kind := range kinds {
		if link, ok := p.metaLinks.get(kind); ok {
			p.tree.AddClass(link, p.options.Links.DisabledClass)
		}
	}
}

// First shows the first page, like the "first" meta-link.
func (p *Pager[N]) First() { p.ShowPage(0) }

// Last shows the last page, like the "last" meta-link.
func (p *Pager[N]) Last() { p.ShowPage(p.PageCount() - 1) }

// Previous shows the previous page, like the "prev" meta-link. On the first
// page it re-renders the first page.
func (p *Pager[N]) Previous() { p.ShowPage(p.CurrentPage() - 1) }

// Next shows the next page, like the "next" meta-link. On the last page it
// re-renders the last page.
func (p *Pager[N]) Next() { p.ShowPage(p.CurrentPage() + 1) }

// OnBeforeChange registers another beforeChange listener.
func (p *Pager[N]) OnBeforeChange(fn ChangeFunc[N]) {
	if p == nil {
		return
	}

	p.events.BeforeChange = append(p.events.BeforeChange, fn)
}

// OnAfterChange registers another afterChange listener.
func (p *Pager[N]) OnAfterChange(fn ChangeFunc[N]) {
	if p == nil {
		return
	}

	p.events.AfterChange = append(p.events.AfterChange, fn)
}

// IsActive returns false when the pager had too few elements to paginate.
func (p *Pager[N]) IsActive() bool {
	if p == nil {
		return false
	}

	return p.active
}

func (p *Pager[N]) CurrentPage() int {
	if p == nil {
		return 0
	}

	return p.currentPage
}

// PageCount returns ceil(len(elements) / ItemsPerPage), or 0 when inactive.
func (p *Pager[N]) PageCount() int {
	if p == nil {
		return 0
	}

	return p.pageCount
}

func (p *Pager[N]) ItemsPerPage() int {
	if p == nil {
		return 0
	}

	return p.itemsPerPage
}

// Elements returns a copy of the paginated elements.
func (p *Pager[N]) Elements() []N {
	if p == nil {
		return nil
	}

	return slices.Clone(p.elements)
}

// PageLinks returns the numbered links, one per page, in page order.
func (p *Pager[N]) PageLinks() []N {
	if p == nil {
		return nil
	}

	return slices.Clone(p.pageLinks)
}

// MetaLink returns the meta-link of the given kind, if it was created.
func (p *Pager[N]) MetaLink(kind MetaKind) (N, bool) {
	if p == nil {
		return lo.Empty[N](), false
	}

	return p.metaLinks.get(kind)
}

// Toolbar returns the toolbar element of an active pager.
func (p *Pager[N]) Toolbar() (N, bool) {
	if !p.IsActive() {
		return lo.Empty[N](), false
	}

	return p.toolbar, true
}

// Options returns a copy of the options the pager was built with, without
// event listeners.
func (p *Pager[N]) Options() Options[N] {
	if p == nil {
		return Options[N]{}
	}

	return p.options
}
