// Package content holds the static quadrant material shown by the browser. Everything is loaded
// once at startup and never mutated afterwards.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

var (
	ErrUnknownQuadrant = errors.New("unknown quadrant")
	ErrContentRead     = errors.New("failed to read content")
	ErrContentInvalid  = errors.New("invalid content")
)

// QuadrantID identifies one of the four topic areas. The values are the keys used by the content
// document, which predate the topic names.
type QuadrantID string

const (
	Online    QuadrantID = "product"
	Offline   QuadrantID = "transport"
	Chemical  QuadrantID = "storage"
	Deionised QuadrantID = "process"
)

// Quadrants returns every quadrant in grid order.
func Quadrants() []QuadrantID {
	return []QuadrantID{Online, Offline, Chemical, Deionised}
}

func ParseQuadrantID(value string) (QuadrantID, error) {
	quadrant := QuadrantID(value)
	if !slices.Contains(Quadrants(), quadrant) {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuadrant, value)
	}

	return quadrant, nil
}

// Component is the marker naming which detail layout a quadrant uses.
type Component string

const (
	ComponentOnline    Component = "online"
	ComponentOffline   Component = "offline"
	ComponentChemical  Component = "chemical"
	ComponentDeionised Component = "deionised"
)

type QuadrantEntry struct {
	ID          QuadrantID `yaml:"-"`
	Title       string     `yaml:"title"`
	Subtitle    string     `yaml:"subtitle"`
	Description string     `yaml:"description"`
}

// NavSection is a single table of contents anchor.
type NavSection struct {
	SectionID string `yaml:"section"`
	Label     string `yaml:"label"`
}

type ImageSlot struct {
	Index   int    `yaml:"index"`
	Label   string `yaml:"label"`
	Path    string `yaml:"path"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

// AltText falls back to the button label when no alt text was authored.
func (s ImageSlot) AltText() string {
	if s.Alt != "" {
		return s.Alt
	}

	return s.Label
}

type Switcher struct {
	// FadeCaption fades the caption along with the image during a swap.
	FadeCaption bool        `yaml:"fade_caption"`
	Slots       []ImageSlot `yaml:"slots"`
}

type Figure struct {
	Path    string `yaml:"path"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

// Chip is an inert labelled button, optionally with a tooltip style title.
type Chip struct {
	Label string `yaml:"label"`
	Title string `yaml:"title"`
}

// Block is one piece of a section. Exactly one of its fields is set.
type Block struct {
	Markdown string  `yaml:"markdown"`
	Figure   *Figure `yaml:"figure"`
	Switcher bool    `yaml:"switcher"`
	Chips    []Chip  `yaml:"chips"`
}

type Section struct {
	ID      string  `yaml:"id"`
	Heading string  `yaml:"heading"`
	Blocks  []Block `yaml:"blocks"`
}

// Detail is the configuration record the renderer builds a quadrant's detail view from.
type Detail struct {
	Component Component    `yaml:"component"`
	MainTitle string       `yaml:"main_title"`
	BackToTop bool         `yaml:"back_to_top"`
	Nav       []NavSection `yaml:"nav"`
	Switcher  *Switcher    `yaml:"switcher"`
	Sections  []Section    `yaml:"sections"`
}

type quadrantDocument struct {
	QuadrantEntry `yaml:",inline"`
	Detail        Detail `yaml:"detail"`
}

type document struct {
	Quadrants map[string]quadrantDocument `yaml:"quadrants"`
}

// Store is the read-only content table.
type Store struct {
	entries map[QuadrantID]QuadrantEntry
	details map[QuadrantID]Detail
}

// Default returns the store built from the embedded content document.
func Default() (*Store, error) {
	return Parse(embedded)
}

// Load reads a content document from disk. An empty path loads the embedded document.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}

	body, errRead := os.ReadFile(path)
	if errRead != nil {
		return nil, errors.Join(errRead, ErrContentRead)
	}

	return Parse(body)
}

func Parse(body []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, errors.Join(err, ErrContentRead)
	}

	store := &Store{
		entries: map[QuadrantID]QuadrantEntry{},
		details: map[QuadrantID]Detail{},
	}

	for key, quadrant := range doc.Quadrants {
		quadrantID, errID := ParseQuadrantID(key)
		if errID != nil {
			return nil, errors.Join(errID, ErrContentInvalid)
		}

		entry := quadrant.QuadrantEntry
		entry.ID = quadrantID
		store.entries[quadrantID] = entry
		store.details[quadrantID] = quadrant.Detail
	}

	if err := store.validate(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *Store) Entry(quadrant QuadrantID) (QuadrantEntry, bool) {
	entry, found := s.entries[quadrant]

	return entry, found
}

func (s *Store) Detail(quadrant QuadrantID) (Detail, bool) {
	detail, found := s.details[quadrant]

	return detail, found
}

// Entries returns every entry in grid order.
func (s *Store) Entries() []QuadrantEntry {
	entries := make([]QuadrantEntry, 0, len(s.entries))
	for _, quadrant := range Quadrants() {
		entries = append(entries, s.entries[quadrant])
	}

	return entries
}
