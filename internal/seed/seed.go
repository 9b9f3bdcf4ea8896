// Package seed provides the built-in page set used when no content
// directory or database is configured.
package seed

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/starford/leaflet/internal/content"
)

// Version is the label carried by every seeded page.
const Version = "0.1.0"

// Source yields the built-in pages. Each call mints fresh block ids and
// stamps pages with the current time.
type Source struct {
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Pages implements content.Source.
func (s Source) Pages(_ context.Context) ([]*content.Page, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	t := now().UTC()

	home, err := content.NewPage("home", t, []content.Block{
		content.NewHeader(uuid.New(), "Data Engineer, Problem Solver", 2),
		content.NewParagraph(uuid.New(),
			`<span class="highlight">Data and processes accompany me through my entire professional life. `+
				`As an expert in data and processes, especially in supply chain management, production and their interfaces, `+
				`who speaks both the technical and the business language and can interpret in between, `+
				`I contribute strongly to the understanding and better communication of problems.</span>`),
	}, Version)
	if err != nil {
		return nil, err
	}

	impressum, err := content.NewPage("impressum", t, []content.Block{
		content.NewHeader(uuid.New(), "Angaben gemäß §5 TMG", 2),
		content.NewParagraph(uuid.New(), "Christopher Scholz<br>An der Dahme 3<br>12527 Berlin"),
		content.NewHeader(uuid.New(), "Kontakt", 2),
		content.NewParagraph(uuid.New(),
			`Email: <a href="mailto:website@christopher-scholz.com">website@christopher-scholz.com</a>`),
	}, Version)
	if err != nil {
		return nil, err
	}

	return []*content.Page{home, impressum}, nil
}
