// Package render turns quadrant content into terminal documents. Prose is markdown rendered with
// glamour, everything else is composed with lipgloss.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/leighmacdonald/turbinewash/internal/content"
)

const (
	// StyleAuto picks a dark or light style from the terminal background.
	StyleAuto = "auto"
	// MinWidth is the narrowest document that is laid out, anything smaller is clamped.
	MinWidth = 40
)

var (
	errRenderer = errors.New("failed to create markdown renderer")
	errMarkdown = errors.New("failed to render markdown")
	errQuadrant = errors.New("no content for quadrant")
)

type Options struct {
	Width int
	// Style is a glamour standard style name: auto, dark, light, notty, ascii, dracula...
	Style string
}

// Renderer builds pages for a fixed width. Changing width means creating a new Renderer.
type Renderer struct {
	store *content.Store
	width int
	style string
	prose *glamour.TermRenderer
}

func New(store *content.Store, opts Options) (*Renderer, error) {
	width := max(MinWidth, opts.Width)
	style := opts.Style
	if style == "" {
		style = StyleAuto
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(width - 4)}
	if style == StyleAuto {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(style))
	}

	prose, errProse := glamour.NewTermRenderer(options...)
	if errProse != nil {
		return nil, errors.Join(errProse, errRenderer)
	}

	return &Renderer{store: store, width: width, style: style, prose: prose}, nil
}

func (r *Renderer) Width() int {
	return r.width
}

func (r *Renderer) Style() string {
	return r.style
}

// Render builds the page for quadrant: the summary card followed by the quadrant's detail
// document. Each call builds a fresh page, nothing is shared with earlier pages.
func (r *Renderer) Render(quadrant content.QuadrantID) (*Page, error) {
	entry, foundEntry := r.store.Entry(quadrant)
	detail, foundDetail := r.store.Detail(quadrant)
	if !foundEntry || !foundDetail {
		return nil, fmt.Errorf("%w: %s", errQuadrant, quadrant)
	}

	page := &Page{
		Quadrant: quadrant,
		Entry:    entry,
		Detail:   detail,
		width:    r.width,
	}

	page.add(ElementCard, kindCard, text(r.card(entry, r.store.Stats(quadrant))))

	builder, errBuilder := r.detailBuilder(detail.Component)
	if errBuilder != nil {
		return nil, errBuilder
	}

	if err := builder(page, detail); err != nil {
		return nil, err
	}

	return page, nil
}

// markdown renders prose and strips the blank lines glamour pads documents with.
func (r *Renderer) markdown(body string) (string, error) {
	out, err := r.prose.Render(body)
	if err != nil {
		return "", errors.Join(err, errMarkdown)
	}

	return trimBlankLines(out), nil
}

func trimBlankLines(value string) string {
	lines := strings.Split(value, "\n")
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}
	for end > start && isBlank(lines[end-1]) {
		end--
	}

	return strings.Join(lines[start:end], "\n")
}

func isBlank(line string) bool {
	return strings.TrimSpace(ansi.Strip(line)) == ""
}
