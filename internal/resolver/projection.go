package resolver

import (
	"time"

	"github.com/google/uuid"

	"github.com/starford/leaflet/internal/content"
)

// PageView is the serializable form of a page.
type PageView struct {
	Name    string      `json:"name"`
	Time    time.Time   `json:"time"`
	Blocks  []BlockView `json:"blocks"`
	Version string      `json:"version"`
}

// BlockView is the serializable form of a block. Data holds one of
// ParagraphData, HeaderData or ListData, matching Type.
type BlockView struct {
	ID   uuid.UUID    `json:"id"`
	Type content.Kind `json:"type"`
	Data any          `json:"data"`
}

// ParagraphData is the payload of a paragraph block.
type ParagraphData struct {
	Text string `json:"text"`
}

// HeaderData is the payload of a header block.
type HeaderData struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// ListData is the payload of a list block.
type ListData struct {
	Style content.ListStyle `json:"style"`
	Items []string          `json:"items"`
}

// Project converts a page into its view. Block order is kept.
func Project(p *content.Page) PageView {
	v := PageView{
		Name:    p.Name(),
		Time:    p.Time(),
		Blocks:  make([]BlockView, 0, p.Len()),
		Version: p.Version(),
	}
	for _, b := range p.Blocks() {
		v.Blocks = append(v.Blocks, ProjectBlock(b))
	}
	return v
}

// ProjectBlock converts one block into its view.
func ProjectBlock(b content.Block) BlockView {
	var pr projector
	b.Accept(&pr)
	return BlockView{ID: b.ID(), Type: b.Kind(), Data: pr.data}
}

type projector struct {
	data any
}

func (p *projector) VisitParagraph(b *content.Paragraph) {
	p.data = ParagraphData{Text: b.Text()}
}

func (p *projector) VisitHeader(b *content.Header) {
	p.data = HeaderData{Text: b.Text(), Level: b.Level()}
}

func (p *projector) VisitList(b *content.List) {
	p.data = ListData{Style: b.Style(), Items: b.Items()}
}
