package content

import (
	"strings"
)

// wordsPerMinute is the reading speed used for the estimate shown on the summary card.
const wordsPerMinute = 200

type Stats struct {
	Words   int
	Minutes int
}

// Stats counts the words a reader meets on a quadrant's detail view: headings, prose, captions
// and image switcher captions.
func (s *Store) Stats(quadrant QuadrantID) Stats {
	detail, found := s.details[quadrant]
	if !found {
		return Stats{}
	}

	words := len(strings.Fields(detail.MainTitle))
	for _, section := range detail.Sections {
		words += len(strings.Fields(section.Heading))
		for _, block := range section.Blocks {
			switch {
			case block.Markdown != "":
				words += len(strings.Fields(block.Markdown))
			case block.Figure != nil:
				words += len(strings.Fields(block.Figure.Caption))
			case block.Switcher && detail.Switcher != nil:
				words += len(strings.Fields(detail.Switcher.Slots[0].Caption))
			}
		}
	}

	minutes := (words + wordsPerMinute - 1) / wordsPerMinute

	return Stats{Words: words, Minutes: max(1, minutes)}
}
