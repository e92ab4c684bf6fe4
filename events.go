package elementpager

// Event names a pager lifecycle event.
type Event string

const (
	EventInit         Event = "init"
	EventBeforeChange Event = "beforeChange"
	EventAfterChange  Event = "afterChange"
)

type (
	// InitFunc is called once, after the toolbar is built and before the
	// first page is shown.
	InitFunc[N comparable] func(p *Pager[N])

	// ChangeFunc is called around a page change with the target page. It is
	// observational: it cannot cancel the change.
	ChangeFunc[N comparable] func(p *Pager[N], page int)

	// Events holds the listeners of every pager event. Listeners run
	// synchronously in registration order.
	Events[N comparable] struct {
		Init         []InitFunc[N]
		BeforeChange []ChangeFunc[N]
		AfterChange  []ChangeFunc[N]
	}
)

func (e *Events[N]) clone() Events[N] {
	if e == nil {
		return Events[N]{}
	}

	return Events[N]{
		Init:         append([]InitFunc[N](nil), e.Init...),
		BeforeChange: append([]ChangeFunc[N](nil), e.BeforeChange...),
		AfterChange:  append([]ChangeFunc[N](nil), e.AfterChange...),
	}
}

func (e *Events[N]) fireInit(p *Pager[N]) {
	for _, fn := range e.Init {
		if fn != nil {
			fn(p)
		}
	}
}

func (e *Events[N]) fireChange(event Event, p *Pager[N], page int) {
	listeners := e.BeforeChange
	if event == EventAfterChange {
		listeners = e.AfterChange
	}

	for _, fn := range listeners {
		if fn != nil {
			fn(p, page)
		}
	}
}
