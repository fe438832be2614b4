package model

import "github.com/leighmacdonald/turbinewash/internal/view"

// Page is a screen occupying everything except the footer.
type Page int

const (
	PageMain Page = iota
	PageHelp
)

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page Page
	// View is the grid/detail selection, mirrored from the controller on every transition.
	View view.State

	// --------- h
	// | Upper | e
	// |-------- i
	// | Lower | g
	// --------- h
	// W i d t h t
	//
	// Upper holds the header and, in the detail view, the quadrant pills. Lower is what is left
	// for the grid or the document.
	Upper  int
	Lower  int
	Height int
	Width  int
}
