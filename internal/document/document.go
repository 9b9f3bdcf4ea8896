// Package document reads and writes pages as YAML files.
//
// A page file looks like:
//
//	name: home
//	time: 2024-03-01T10:00:00Z
//	version: 0.1.0
//	blocks:
//	  - kind: header
//	    text: Welcome
//	    level: 2
//	  - kind: list
//	    style: ORDERED
//	    items: [one, two]
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/starford/leaflet/internal/content"
)

// Namespace seeds the name-based ids of blocks that have no explicit id.
var Namespace = uuid.MustParse("6f1c2b9e-4d3a-5e8f-9a71-0c2d4e6f8a1b")

const defaultHeaderLevel = 1

// File is the on-disk shape of a page.
type File struct {
	Name    string      `yaml:"name,omitempty"`
	Time    *time.Time  `yaml:"time,omitempty"`
	Version string      `yaml:"version,omitempty"`
	Blocks  []BlockSpec `yaml:"blocks"`
}

// BlockSpec is one block entry. Which payload fields apply depends on Kind.
type BlockSpec struct {
	ID    string   `yaml:"id,omitempty"`
	Kind  string   `yaml:"kind"`
	Text  string   `yaml:"text,omitempty"`
	Level *int     `yaml:"level,omitempty"`
	Style string   `yaml:"style,omitempty"`
	Items []string `yaml:"items,omitempty,flow"`
}

// Defaults fill fields a file leaves out.
type Defaults struct {
	Name string
	Time time.Time
}

// Decode parses a YAML page. Unknown fields are rejected.
func Decode(data []byte, def Defaults) (*content.Page, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("document: parse: %w", err)
	}
	return f.Page(def)
}

// Page converts the file into a content page.
func (f *File) Page(def Defaults) (*content.Page, error) {
	name := f.Name
	if name == "" {
		name = def.Name
	}
	if name == "" {
		return nil, fmt.Errorf("document: page name is required")
	}

	t := def.Time
	if f.Time != nil {
		t = *f.Time
	}

	blocks := make([]content.Block, 0, len(f.Blocks))
	for i, spec := range f.Blocks {
		b, err := spec.block(name, i)
		if err != nil {
			return nil, fmt.Errorf("document: page %q block %d: %w", name, i, err)
		}
		blocks = append(blocks, b)
	}

	p, err := content.NewPage(name, t.UTC(), blocks, f.Version)
	if err != nil {
		return nil, fmt.Errorf("document: %w", err)
	}
	return p, nil
}

func (s BlockSpec) block(page string, pos int) (content.Block, error) {
	kind, err := content.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}

	id := uuid.NewSHA1(Namespace, []byte(page+"#"+strconv.Itoa(pos)))
	if s.ID != "" {
		if id, err = uuid.Parse(s.ID); err != nil {
			return nil, fmt.Errorf("id %q: %w", s.ID, err)
		}
	}

	switch kind {
	case content.KindHeader:
		level := defaultHeaderLevel
		if s.Level != nil {
			level = *s.Level
		}
		return content.NewHeader(id, s.Text, level), nil
	case content.KindList:
		style, err := content.ParseListStyle(s.Style)
		if err != nil {
			return nil, err
		}
		return content.NewList(id, style, s.Items), nil
	default:
		return content.NewParagraph(id, s.Text), nil
	}
}

// FromPage captures a page in file form, with explicit block ids.
func FromPage(p *content.Page) *File {
	t := p.Time()
	f := &File{
		Name:    p.Name(),
		Time:    &t,
		Version: p.Version(),
		Blocks:  make([]BlockSpec, 0, p.Len()),
	}
	enc := &specBuilder{}
	for _, b := range p.Blocks() {
		b.Accept(enc)
		f.Blocks = append(f.Blocks, enc.spec)
	}
	return f
}

// Encode renders a page as YAML.
func Encode(p *content.Page) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(FromPage(p)); err != nil {
		return nil, fmt.Errorf("document: encode %q: %w", p.Name(), err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("document: encode %q: %w", p.Name(), err)
	}
	return buf.Bytes(), nil
}

type specBuilder struct {
	spec BlockSpec
}

func (b *specBuilder) VisitParagraph(p *content.Paragraph) {
	b.spec = BlockSpec{ID: p.ID().String(), Kind: string(p.Kind()), Text: p.Text()}
}

func (b *specBuilder) VisitHeader(h *content.Header) {
	level := h.Level()
	b.spec = BlockSpec{ID: h.ID().String(), Kind: string(h.Kind()), Text: h.Text(), Level: &level}
}

func (b *specBuilder) VisitList(l *content.List) {
	b.spec = BlockSpec{ID: l.ID().String(), Kind: string(l.Kind()), Style: string(l.Style()), Items: l.Items()}
}
