package content

import (
	"errors"
	"fmt"
)

var (
	errMissingQuadrant = errors.New("quadrant missing")
	errNavTarget       = errors.New("nav section has no matching section")
	errDuplicateID     = errors.New("duplicate section id")
	errSlotIndex       = errors.New("image slots must be numbered from 1 without gaps")
	errSwitcherBlock   = errors.New("switcher block and switcher slots must be defined together")
	errBlockKind       = errors.New("block must set exactly one of markdown, figure, switcher or chips")
	errComponent       = errors.New("unknown component")
)

// validate keeps the markup and the data in lockstep. Anything the renderer or navigator looks up
// by id is checked here once, so the ui never has to handle a missing element.
func (s *Store) validate() error {
	var errs []error

	for _, quadrant := range Quadrants() {
		if _, found := s.entries[quadrant]; !found {
			errs = append(errs, fmt.Errorf("%w: %s", errMissingQuadrant, quadrant))

			continue
		}

		if err := s.details[quadrant].validate(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", quadrant, err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append(errs, ErrContentInvalid)...)
	}

	return nil
}

func (d Detail) validate() error {
	switch d.Component {
	case ComponentOnline, ComponentOffline, ComponentChemical, ComponentDeionised:
	default:
		return fmt.Errorf("%w: %q", errComponent, d.Component)
	}

	sectionIDs := map[string]bool{}
	switcherBlocks := 0

	for _, section := range d.Sections {
		if sectionIDs[section.ID] {
			return fmt.Errorf("%w: %s", errDuplicateID, section.ID)
		}
		sectionIDs[section.ID] = true

		for _, block := range section.Blocks {
			if block.kinds() != 1 {
				return fmt.Errorf("%w: section %s", errBlockKind, section.ID)
			}

			if block.Switcher {
				switcherBlocks++
			}
		}
	}

	for _, nav := range d.Nav {
		if !sectionIDs[nav.SectionID] {
			return fmt.Errorf("%w: %s", errNavTarget, nav.SectionID)
		}
	}

	hasSlots := d.Switcher != nil && len(d.Switcher.Slots) > 0
	if hasSlots != (switcherBlocks == 1) || switcherBlocks > 1 {
		return errSwitcherBlock
	}

	if hasSlots {
		for idx, slot := range d.Switcher.Slots {
			if slot.Index != idx+1 {
				return fmt.Errorf("%w: got %d at position %d", errSlotIndex, slot.Index, idx+1)
			}
		}
	}

	return nil
}

func (b Block) kinds() int {
	count := 0
	if b.Markdown != "" {
		count++
	}
	if b.Figure != nil {
		count++
	}
	if b.Switcher {
		count++
	}
	if len(b.Chips) > 0 {
		count++
	}

	return count
}
