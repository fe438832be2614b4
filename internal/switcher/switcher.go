// Package switcher implements the fading image carousel embedded in a quadrant's detail view.
package switcher

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/turbinewash/internal/content"
)

// DefaultFadeDelay is how long the outgoing image stays faded before the swap.
const DefaultFadeDelay = 150 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// fadeMsg completes a swap. Only the message carrying the latest tag is applied, which cancels any
// swap that was superseded while it was still fading.
type fadeMsg struct {
	id    int
	tag   int
	index int
}

// Button is the state of a single switch button.
type Button struct {
	Index  int
	Label  string
	Active bool
}

type Options struct {
	FadeDelay   time.Duration
	FadeCaption bool
}

// Model is one switcher instance, living as long as the detail view that created it.
type Model struct {
	id          int
	tag         int
	slots       []content.ImageSlot
	current     int
	pending     int
	fading      bool
	fadeCaption bool
	delay       time.Duration
}

// New creates a switcher displaying the first slot.
func New(slots []content.ImageSlot, opts Options) Model {
	delay := opts.FadeDelay
	if delay <= 0 {
		delay = DefaultFadeDelay
	}

	model := Model{
		id:          nextID(),
		slots:       slots,
		fadeCaption: opts.FadeCaption,
		delay:       delay,
	}

	if len(slots) > 0 {
		model.current = slots[0].Index
	}

	return model
}

// WithFadeDelay changes the delay of swaps started from now on. A swap already fading keeps its own.
func (m Model) WithFadeDelay(delay time.Duration) Model {
	if delay > 0 {
		m.delay = delay
	}

	return m
}

func (m Model) FadeDelay() time.Duration {
	return m.delay
}

func (m Model) slot(index int) (content.ImageSlot, bool) {
	for _, slot := range m.slots {
		if slot.Index == index {
			return slot, true
		}
	}

	return content.ImageSlot{}, false
}

// Select starts a swap to index. Selecting the displayed image while nothing is pending does
// nothing. Selecting it while a swap is pending cancels that swap and fades back in.
func (m Model) Select(index int) (Model, tea.Cmd) {
	if _, found := m.slot(index); !found {
		return m, nil
	}

	if index == m.current {
		if m.fading {
			m.tag++
			m.fading = false
			m.pending = 0
		}

		return m, nil
	}

	m.tag++
	m.fading = true
	m.pending = index

	return m, m.fade(m.tag, index)
}

// Step selects the image delta positions away from the displayed one, wrapping around.
func (m Model) Step(delta int) (Model, tea.Cmd) {
	if len(m.slots) == 0 {
		return m, nil
	}

	from := m.current
	if m.fading {
		from = m.pending
	}

	pos := 0
	for idx, slot := range m.slots {
		if slot.Index == from {
			pos = idx

			break
		}
	}

	pos = ((pos+delta)%len(m.slots) + len(m.slots)) % len(m.slots)

	return m.Select(m.slots[pos].Index)
}

func (m Model) fade(tag int, index int) tea.Cmd {
	id := m.id

	return tea.Tick(m.delay, func(_ time.Time) tea.Msg {
		return fadeMsg{id: id, tag: tag, index: index}
	})
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fadeMsg:
		if msg.id != m.id || msg.tag != m.tag {
			return m, nil
		}

		m.current = msg.index
		m.pending = 0
		m.fading = false
	}

	return m, nil
}

// Current is the index of the displayed image.
func (m Model) Current() int {
	return m.current
}

// Image returns the displayed slot.
func (m Model) Image() content.ImageSlot {
	slot, _ := m.slot(m.current)

	return slot
}

func (m Model) ImageFaded() bool {
	return m.fading
}

func (m Model) CaptionFaded() bool {
	return m.fading && m.fadeCaption
}

// Buttons reflect the displayed image, so the active marker moves once the swap lands.
func (m Model) Buttons() []Button {
	buttons := make([]Button, len(m.slots))
	for idx, slot := range m.slots {
		buttons[idx] = Button{Index: slot.Index, Label: slot.Label, Active: slot.Index == m.current}
	}

	return buttons
}
