package elementpager

import (
	"github.com/charmbracelet/log"
)

const (
	DefaultHideClass          = "elementPagerHide"
	DefaultToolbarClass       = "elementPagerToolbar"
	DefaultLinkContainerClass = "pages"
	DefaultCurrentClass       = "current"
	DefaultDisabledClass      = "disabled"
)

// DefaultLabels are the texts of the meta-links.
var DefaultLabels = Labels{
	First: "<<",
	Prev:  "<",
	Next:  ">",
	Last:  ">>",
}

type (
	// Options configures a Pager. Use DefaultOptions and the With* methods to
	// build one; a nil *Options is treated as DefaultOptions.
	Options[N comparable] struct {
		// ItemsPerPage - number of elements displayed per page.
		ItemsPerPage int
		// HideClass - CSS class that hides an element.
		HideClass string
		Toolbar   ToolbarOptions[N]
		Links     LinkOptions
		Events    Events[N]
		// Logger receives debug records about state transitions.
		Logger *log.Logger
	}

	ToolbarOptions[N comparable] struct {
		Location Location[N]
		// CSSClass - class of the toolbar element.
		CSSClass string
		// LinkContainerClass - class of the element wrapping numbered links.
		LinkContainerClass string
		ShowNextPrevious   bool
		ShowFirstLast      bool
	}

	LinkOptions struct {
		// CurrentClass marks the link of the displayed page.
		CurrentClass string
		// DisabledClass marks meta-links that cannot move the pager.
		DisabledClass string
		Labels        Labels
	}

	// Labels are the texts of the meta-links.
	Labels struct {
		First string `json:"first" yaml:"first"`
		Prev  string `json:"prev" yaml:"prev"`
		Next  string `json:"next" yaml:"next"`
		Last  string `json:"last" yaml:"last"`
	}
)

// DefaultOptions returns the options used when none are given.
func DefaultOptions[N comparable]() *Options[N] {
	return &Options[N]{
		ItemsPerPage: DefaultItemsPerPage,
		HideClass:    DefaultHideClass,
		Toolbar: ToolbarOptions[N]{
			Location:           LocationAfter[N](),
			CSSClass:           DefaultToolbarClass,
			LinkContainerClass: DefaultLinkContainerClass,
			ShowNextPrevious:   true,
			ShowFirstLast:      true,
		},
		Links: LinkOptions{
			CurrentClass:  DefaultCurrentClass,
			DisabledClass: DefaultDisabledClass,
			Labels:        DefaultLabels,
		},
	}
}

// WithItemsPerPage sets the page size. Non-positive sizes are normalized to
// DefaultItemsPerPage.
func (o *Options[N]) WithItemsPerPage(itemsPerPage int) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.ItemsPerPage = NormalizeItemsPerPage(itemsPerPage)

	return o
}

func (o *Options[N]) WithHideClass(class string) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.HideClass = class

	return o
}

func (o *Options[N]) WithLocation(location Location[N]) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Toolbar.Location = location

	return o
}

// WithToolbarClasses sets the toolbar and link container classes.
func (o *Options[N]) WithToolbarClasses(toolbarClass, linkContainerClass string) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Toolbar.CSSClass = toolbarClass
	o.Toolbar.LinkContainerClass = linkContainerClass

	return o
}

// WithMetaLinks toggles the first/last and next/previous links.
func (o *Options[N]) WithMetaLinks(showFirstLast, showNextPrevious bool) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Toolbar.ShowFirstLast = showFirstLast
	o.Toolbar.ShowNextPrevious = showNextPrevious

	return o
}

// WithLinkClasses sets the classes of the current page link and of disabled
// meta-links.
func (o *Options[N]) WithLinkClasses(currentClass, disabledClass string) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Links.CurrentClass = currentClass
	o.Links.DisabledClass = disabledClass

	return o
}

// WithLabels overrides meta-link labels. Empty labels keep their current value.
func (o *Options[N]) WithLabels(labels Labels) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Links.Labels = o.Links.Labels.merge(labels)

	return o
}

// OnInit appends an init listener.
func (o *Options[N]) OnInit(fn InitFunc[N]) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Events.Init = append(o.Events.Init, fn)

	return o
}

// OnBeforeChange appends a beforeChange listener.
func (o *Options[N]) OnBeforeChange(fn ChangeFunc[N]) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Events.BeforeChange = append(o.Events.BeforeChange, fn)

	return o
}

// OnAfterChange appends an afterChange listener.
func (o *Options[N]) OnAfterChange(fn ChangeFunc[N]) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Events.AfterChange = append(o.Events.AfterChange, fn)

	return o
}

func (o *Options[N]) WithLogger(logger *log.Logger) *Options[N] {
	if o == nil {
		o = DefaultOptions[N]()
	}

	o.Logger = logger

	return o
}

// label returns the text of the meta-link of the given kind.
func (l Labels) label(kind MetaKind) string {
	switch kind {
	case MetaFirst:
		return l.First
	case MetaPrev:
		return l.Prev
	case MetaNext:
		return l.Next
	case MetaLast:
		return l.Last
	default:
		return ""
	}
}

func (l Labels) merge(other Labels) Labels {
	if other.First != "" {
		l.First = other.First
	}
	if other.Prev != "" {
		l.Prev = other.Prev
	}
	if other.Next != "" {
		l.Next = other.Next
	}
	if other.Last != "" {
		l.Last = other.Last
	}

	return l
}
