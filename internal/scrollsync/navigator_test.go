package scrollsync_test

import (
	"testing"

	"github.com/leighmacdonald/turbinewash/internal/scrollsync"
	"github.com/stretchr/testify/require"
)

type fakeScope struct {
	elements map[string]scrollsync.Span
	links    []scrollsync.Link
	sections []scrollsync.Span
}

func (s fakeScope) Element(id string) (scrollsync.Span, bool) {
	span, found := s.elements[id]

	return span, found
}

func (s fakeScope) Links(_ string) []scrollsync.Link {
	return s.links
}

func (s fakeScope) Sections() []scrollsync.Span {
	return s.sections
}

// newScope lays out a 10 row title followed by four 20 row sections.
func newScope(backToTop bool) fakeScope {
	scope := fakeScope{
		elements: map[string]scrollsync.Span{
			"title": {ID: "title", Top: 0, Height: 10},
			"nav":   {ID: "nav"},
		},
		links: []scrollsync.Link{
			{SectionID: "introduction", Label: "Introduction"},
			{SectionID: "process", Label: "Process"},
			{SectionID: "set-up", Label: "Set-Up"},
			{SectionID: "time", Label: "Time"},
		},
	}

	for idx, link := range scope.links {
		scope.sections = append(scope.sections, scrollsync.Span{ID: link.SectionID, Top: 10 + idx*20, Height: 20})
	}

	if backToTop {
		scope.elements["back-to-top"] = scrollsync.Span{ID: "back-to-top"}
	}

	return scope
}

func options() scrollsync.Options {
	return scrollsync.Options{TitleID: "title", NavID: "nav", BackToTopID: "back-to-top", BackToTopRows: 15}
}

func currentCount(nav *scrollsync.Navigator) int {
	count := 0
	for _, link := range nav.Links() {
		if link.Current {
			count++
		}
	}

	return count
}

func TestObserverCheck(t *testing.T) {
	observer := scrollsync.NewObserver()
	observer.Observe(scrollsync.Span{ID: "a", Top: 0, Height: 10})
	observer.Observe(scrollsync.Span{ID: "b", Top: 10, Height: 10})

	var entries []scrollsync.Entry
	observer.Subscribe(func(entry scrollsync.Entry) { entries = append(entries, entry) })

	// Initial notification for every span.
	observer.Check(scrollsync.Viewport{Offset: 0, Height: 10})
	require.Equal(t, []scrollsync.Entry{{ID: "a", Intersecting: true}, {ID: "b", Intersecting: false}}, entries)

	// No change, no entries.
	entries = nil
	observer.Check(scrollsync.Viewport{Offset: 4, Height: 10})
	require.Empty(t, entries)

	// Middle row 10 crosses into b.
	observer.Check(scrollsync.Viewport{Offset: 5, Height: 10})
	require.Equal(t, []scrollsync.Entry{{ID: "a", Intersecting: false}, {ID: "b", Intersecting: true}}, entries)
}

func TestNavigatorMiddleCrossing(t *testing.T) {
	nav := scrollsync.Attach(newScope(true), options(), scrollsync.Viewport{Offset: 0, Height: 20})
	// Middle row 10 is the first row of the introduction.
	require.Equal(t, "introduction", nav.Current())
	require.False(t, nav.StickyNavVisible())
	require.False(t, nav.BackToTopVisible())

	// Section "set-up" covers rows 50..69, the middle is offset+10.
	nav.Scroll(scrollsync.Viewport{Offset: 40, Height: 20})
	require.Equal(t, "set-up", nav.Current())
	require.Equal(t, 1, currentCount(nav))
	require.True(t, nav.StickyNavVisible())
	require.True(t, nav.BackToTopVisible())

	nav.Scroll(scrollsync.Viewport{Offset: 39, Height: 20})
	require.Equal(t, "process", nav.Current())
	require.Equal(t, 1, currentCount(nav))
}

func TestNavigatorVisibilityThresholds(t *testing.T) {
	nav := scrollsync.Attach(newScope(true), options(), scrollsync.Viewport{Offset: 9, Height: 20})
	require.False(t, nav.StickyNavVisible(), "title bottom row still visible")

	nav.Scroll(scrollsync.Viewport{Offset: 10, Height: 20})
	require.True(t, nav.StickyNavVisible())
	require.False(t, nav.BackToTopVisible())

	nav.Scroll(scrollsync.Viewport{Offset: 15, Height: 20})
	require.False(t, nav.BackToTopVisible())

	nav.Scroll(scrollsync.Viewport{Offset: 16, Height: 20})
	require.True(t, nav.BackToTopVisible())

	target, ok := nav.BackToTop()
	require.True(t, ok)
	require.Zero(t, target)
}

func TestNavigatorWithoutBackToTop(t *testing.T) {
	nav := scrollsync.Attach(newScope(false), options(), scrollsync.Viewport{Offset: 60, Height: 20})
	require.False(t, nav.BackToTopVisible())
	require.True(t, nav.StickyNavVisible())

	_, ok := nav.BackToTop()
	require.False(t, ok)
}

func TestNavigatorWithoutTitle(t *testing.T) {
	scope := newScope(true)
	delete(scope.elements, "title")

	nav := scrollsync.Attach(scope, options(), scrollsync.Viewport{Offset: 60, Height: 20})
	require.False(t, nav.StickyNavVisible())
	require.Equal(t, "time", nav.Current())
}

func TestNavigatorActivate(t *testing.T) {
	nav := scrollsync.Attach(newScope(true), options(), scrollsync.Viewport{Offset: 0, Height: 20})

	target, ok := nav.Activate("time")
	require.True(t, ok)
	require.Equal(t, 70, target)
	// Marked before any scroll happened.
	require.Equal(t, "time", nav.Current())
	require.Equal(t, 1, currentCount(nav))

	_, ok = nav.Activate("missing")
	require.False(t, ok)
	require.Equal(t, "time", nav.Current())
}

func TestNavigatorActivateOffset(t *testing.T) {
	nav := scrollsync.Attach(newScope(true), options(), scrollsync.Viewport{Offset: 0, Height: 20})

	target, ok := nav.ActivateOffset(1)
	require.True(t, ok)
	require.Equal(t, 30, target)
	require.Equal(t, "process", nav.Current())

	_, _ = nav.ActivateOffset(-2)
	require.Equal(t, "time", nav.Current())

	_, _ = nav.ActivateOffset(1)
	require.Equal(t, "introduction", nav.Current())
}
