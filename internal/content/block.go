// Package content defines pages, their typed blocks, and the immutable store
// that serves them by name.
package content

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/starford/leaflet/internal/apperr"
)

// Kind is the discriminant of a block variant.
type Kind string

// Block kinds. The set is closed: every Visitor handles all of them.
const (
	KindParagraph Kind = "paragraph"
	KindHeader    Kind = "header"
	KindList      Kind = "list"
)

// Kinds lists every block kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindParagraph, KindHeader, KindList}
}

// ParseKind maps a discriminant string onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindParagraph, KindHeader, KindList:
		return k, nil
	}
	return "", fmt.Errorf("content: %w: %q", apperr.ErrUnknownKind, s)
}

// ListStyle selects between bulleted and numbered lists.
type ListStyle string

// List styles.
const (
	ListUnordered ListStyle = "UNORDERED"
	ListOrdered   ListStyle = "ORDERED"
)

// ParseListStyle accepts a style name in any letter case.
// An empty string yields ListUnordered.
func ParseListStyle(s string) (ListStyle, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(ListUnordered):
		return ListUnordered, nil
	case string(ListOrdered):
		return ListOrdered, nil
	}
	return "", fmt.Errorf("content: %w: %q", apperr.ErrInvalidListStyle, s)
}

// Block is one piece of page content.
//
// Only ID and Kind are shared. Payload accessors live on the concrete
// variants; use Accept to reach them without a type switch.
type Block interface {
	ID() uuid.UUID
	Kind() Kind
	Accept(v Visitor)

	// sealed keeps the variant set closed to this package.
	sealed()
	// isNil reports a typed nil variant.
	isNil() bool
}

// Visitor handles every block variant. Adding a variant adds a method here,
// which breaks every implementation until it is handled.
type Visitor interface {
	VisitParagraph(p *Paragraph)
	VisitHeader(h *Header)
	VisitList(l *List)
}

// Paragraph is a block of free text. Text may carry markup and is not validated.
type Paragraph struct {
	id   uuid.UUID
	text string
}

// NewParagraph creates a paragraph block.
func NewParagraph(id uuid.UUID, text string) *Paragraph {
	return &Paragraph{id: id, text: text}
}

// ID returns the block id.
func (p *Paragraph) ID() uuid.UUID { return p.id }

// Kind returns KindParagraph.
func (p *Paragraph) Kind() Kind { return KindParagraph }

// Accept calls v.VisitParagraph.
func (p *Paragraph) Accept(v Visitor) { v.VisitParagraph(p) }

// Text returns the paragraph text, markup included.
func (p *Paragraph) Text() string { return p.text }

func (*Paragraph) sealed() {}
func (p *Paragraph) isNil() bool { return p == nil }

// Header is a heading. Level is not range checked.
type Header struct {
	id    uuid.UUID
	text  string
	level int
}

// NewHeader creates a header block.
func NewHeader(id uuid.UUID, text string, level int) *Header {
	return &Header{id: id, text: text, level: level}
}

// ID returns the block id.
func (h *Header) ID() uuid.UUID { return h.id }

// Kind returns KindHeader.
func (h *Header) Kind() Kind { return KindHeader }

// Accept calls v.VisitHeader.
func (h *Header) Accept(v Visitor) { v.VisitHeader(h) }

// Text returns the heading text.
func (h *Header) Text() string { return h.text }

// Level returns the heading level as given at construction.
func (h *Header) Level() int { return h.level }

func (*Header) sealed() {}
func (h *Header) isNil() bool { return h == nil }

// List is an ordered or unordered sequence of items.
type List struct {
	id    uuid.UUID
	style ListStyle
	items []string
}

// NewList creates a list block. The items slice is copied.
func NewList(id uuid.UUID, style ListStyle, items []string) *List {
	return &List{id: id, style: style, items: slices.Clone(items)}
}

// ID returns the block id.
func (l *List) ID() uuid.UUID { return l.id }

// Kind returns KindList.
func (l *List) Kind() Kind { return KindList }

// Accept calls v.VisitList.
func (l *List) Accept(v Visitor) { v.VisitList(l) }

// Style reports whether the list is ordered or unordered.
func (l *List) Style() ListStyle { return l.style }

func (*List) sealed() {}
func (l *List) isNil() bool { return l == nil }

// Items returns a copy of the list items in order.
func (l *List) Items() []string {
	if l.items == nil {
		return []string{}
	}
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

var (
	_ Block = (*Paragraph)(nil)
	_ Block = (*Header)(nil)
	_ Block = (*List)(nil)
)
