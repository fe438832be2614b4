// Package scrollsync keeps an in-page table of contents in step with the scroll position of a
// viewport. Positions are measured in terminal rows from the top of the document.
package scrollsync

// Span is a block of rows within the document.
type Span struct {
	ID     string
	Top    int
	Height int
}

// Bottom is the first row below the span.
func (s Span) Bottom() int {
	return s.Top + s.Height
}

func (s Span) Contains(row int) bool {
	return row >= s.Top && row < s.Bottom()
}

// Viewport is the visible window onto the document.
type Viewport struct {
	Offset int
	Height int
}

// Middle is the row the trigger band collapses to.
func (v Viewport) Middle() int {
	return v.Offset + v.Height/2
}

// Entry is delivered to subscribers whenever a span's intersection state changes.
type Entry struct {
	ID           string
	Intersecting bool
}

// Observer watches spans against a trigger band collapsed onto the middle row of the viewport, so
// a span is intersecting from the moment its extent covers the viewport's vertical midpoint.
type Observer struct {
	spans       []Span
	state       map[string]bool
	notified    map[string]bool
	subscribers []func(Entry)
}

func NewObserver() *Observer {
	return &Observer{
		state:    map[string]bool{},
		notified: map[string]bool{},
	}
}

// Observe adds a span. Its current state is delivered on the next Check.
func (o *Observer) Observe(span Span) {
	o.spans = append(o.spans, span)
}

func (o *Observer) Subscribe(fn func(Entry)) {
	o.subscribers = append(o.subscribers, fn)
}

// Check evaluates every span against the viewport. Entries are delivered in observation order, so
// when several change in the same check the last observed one is seen last.
func (o *Observer) Check(viewport Viewport) {
	middle := viewport.Middle()
	for _, span := range o.spans {
		intersecting := span.Contains(middle)
		if o.notified[span.ID] && o.state[span.ID] == intersecting {
			continue
		}

		o.notified[span.ID] = true
		o.state[span.ID] = intersecting

		for _, fn := range o.subscribers {
			fn(Entry{ID: span.ID, Intersecting: intersecting})
		}
	}
}
