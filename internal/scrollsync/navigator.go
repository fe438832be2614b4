package scrollsync

// DefaultBackToTopRows is how far the viewport must be scrolled before the back to top control
// appears.
const DefaultBackToTopRows = 15

// Link is a table of contents entry pointing at a section.
type Link struct {
	SectionID string
	Label     string
}

// LinkState is a Link with its current marker.
type LinkState struct {
	Link
	Current bool
}

// Scope is the rendered component the navigator attaches to. Element looks up a single element by
// id, Links returns the anchors inside a nav element and Sections every section of the component.
type Scope interface {
	Element(id string) (Span, bool)
	Links(navID string) []Link
	Sections() []Span
}

type Options struct {
	TitleID string
	NavID   string
	// BackToTopID is optional. When empty, or not found in the scope, the control is never shown.
	BackToTopID   string
	BackToTopRows int
}

// Navigator marks the nav link of the section under the middle of the viewport as current, and
// toggles the sticky nav and back to top visibility. It has no teardown, callers drop it along
// with the document it was attached to.
type Navigator struct {
	title        Span
	hasTitle     bool
	hasBackToTop bool
	threshold    int
	links        []Link
	sections     map[string]Span
	observer     *Observer
	current      string
	stickyNav    bool
	backToTop    bool
}

// Attach locates the elements named by opts within scope and evaluates the initial viewport.
// Missing optional elements disable the features that depend on them.
func Attach(scope Scope, opts Options, viewport Viewport) *Navigator {
	nav := &Navigator{
		threshold: opts.BackToTopRows,
		sections:  map[string]Span{},
		observer:  NewObserver(),
	}

	if nav.threshold <= 0 {
		nav.threshold = DefaultBackToTopRows
	}

	nav.title, nav.hasTitle = scope.Element(opts.TitleID)

	if _, found := scope.Element(opts.NavID); found {
		nav.links = scope.Links(opts.NavID)
	}

	if opts.BackToTopID != "" {
		_, nav.hasBackToTop = scope.Element(opts.BackToTopID)
	}

	for _, section := range scope.Sections() {
		nav.sections[section.ID] = section
		nav.observer.Observe(section)
	}

	nav.observer.Subscribe(nav.onEntry)
	nav.Scroll(viewport)

	return nav
}

func (n *Navigator) onEntry(entry Entry) {
	if entry.Intersecting {
		n.markCurrent(entry.ID)
	}
}

func (n *Navigator) markCurrent(sectionID string) {
	n.current = ""
	for _, link := range n.links {
		if link.SectionID == sectionID {
			n.current = sectionID

			break
		}
	}
}

// Scroll must be called for every change of viewport offset or size.
func (n *Navigator) Scroll(viewport Viewport) {
	n.stickyNav = n.hasTitle && n.title.Bottom() <= viewport.Offset
	n.backToTop = n.hasBackToTop && viewport.Offset > n.threshold
	n.observer.Check(viewport)
}

// Activate marks the link for sectionID as current straight away, without waiting for the scroll to
// reach it, and returns the row the viewport should scroll to.
func (n *Navigator) Activate(sectionID string) (int, bool) {
	section, found := n.sections[sectionID]
	if !found {
		return 0, false
	}

	n.markCurrent(sectionID)

	return section.Top, true
}

// ActivateOffset activates the link delta positions away from the current one, wrapping around.
// With no current link it starts from the first.
func (n *Navigator) ActivateOffset(delta int) (int, bool) {
	if len(n.links) == 0 {
		return 0, false
	}

	idx := -1
	for i, link := range n.links {
		if link.SectionID == n.current {
			idx = i

			break
		}
	}

	if idx == -1 {
		idx = 0
	} else {
		idx = ((idx+delta)%len(n.links) + len(n.links)) % len(n.links)
	}

	return n.Activate(n.links[idx].SectionID)
}

// BackToTop returns the target row of the back to top control.
func (n *Navigator) BackToTop() (int, bool) {
	if !n.hasBackToTop {
		return 0, false
	}

	return 0, true
}

func (n *Navigator) Current() string {
	return n.current
}

func (n *Navigator) StickyNavVisible() bool {
	return n.stickyNav
}

func (n *Navigator) BackToTopVisible() bool {
	return n.backToTop
}

func (n *Navigator) Links() []LinkState {
	states := make([]LinkState, len(n.links))
	for idx, link := range n.links {
		states[idx] = LinkState{Link: link, Current: link.SectionID == n.current}
	}

	return states
}
