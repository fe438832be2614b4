// Package view implements the two state grid/detail controller.
package view

import (
	"fmt"

	"github.com/leighmacdonald/turbinewash/internal/content"
)

// DefaultInstruction is shown whenever the grid is visible.
const DefaultInstruction = "Hover over each quadrant to explore, click to view details"

// State is the complete ui selection state. The zero value is the grid view.
type State struct {
	// Selected is empty unless Detail is set.
	Selected content.QuadrantID
	Detail   bool
}

func (s State) IsActive(quadrant content.QuadrantID) bool {
	return s.Detail && s.Selected == quadrant
}

type TransitionKind int

const (
	// ToGrid returns from a detail view to the grid.
	ToGrid TransitionKind = iota
	// ToDetail opens a detail view from the grid.
	ToDetail
	// Switch jumps from one quadrant's detail view directly to another's.
	Switch
)

func (k TransitionKind) String() string {
	switch k {
	case ToGrid:
		return "to_grid"
	case ToDetail:
		return "to_detail"
	case Switch:
		return "switch"
	default:
		return "unknown"
	}
}

type Transition struct {
	Kind TransitionKind
	From State
	To   State
}

// Titles resolves quadrant titles for the instruction text.
type Titles interface {
	Entry(quadrant content.QuadrantID) (content.QuadrantEntry, bool)
}

// Controller owns the State. Callers hold it by pointer and react to the returned Transition.
type Controller struct {
	state  State
	titles Titles
}

func NewController(titles Titles) *Controller {
	return &Controller{titles: titles}
}

func (c *Controller) State() State {
	return c.state
}

// Select toggles between the grid and the detail view of quadrant. Selecting the open quadrant
// again returns to the grid, selecting any other quadrant opens it directly.
func (c *Controller) Select(quadrant content.QuadrantID) Transition {
	from := c.state
	if from.Detail && from.Selected == quadrant {
		c.state = State{}

		return Transition{Kind: ToGrid, From: from, To: c.state}
	}

	c.state = State{Selected: quadrant, Detail: true}
	kind := ToDetail
	if from.Detail {
		kind = Switch
	}

	return Transition{Kind: kind, From: from, To: c.state}
}

// Reset returns to the grid. It reports false when the grid was already showing.
func (c *Controller) Reset() (Transition, bool) {
	if !c.state.Detail {
		return Transition{}, false
	}

	return c.Select(c.state.Selected), true
}

// IsActive reports whether the buttons for quadrant should carry the active styling.
func (c *Controller) IsActive(quadrant content.QuadrantID) bool {
	return c.state.IsActive(quadrant)
}

func (c *Controller) Instruction() string {
	if !c.state.Detail {
		return DefaultInstruction
	}

	title := string(c.state.Selected)
	if entry, found := c.titles.Entry(c.state.Selected); found {
		title = entry.Title
	}

	return fmt.Sprintf("Click the %s button again to return to the grid view", title)
}
