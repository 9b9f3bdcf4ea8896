package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/starford/leaflet/internal/checksum"
	"github.com/starford/leaflet/internal/content"
	"github.com/starford/leaflet/internal/document"
)

// DirSource reads one page per YAML file from a Provider.
type DirSource struct {
	store Provider
}

// NewDirSource returns a content.Source over store.
func NewDirSource(store Provider) *DirSource {
	return &DirSource{store: store}
}

// Pages implements content.Source. A file without a name field is named
// after its path minus the extension; a file without a time uses its
// modification time.
func (s *DirSource) Pages(ctx context.Context) ([]*content.Page, error) {
	metas, err := s.store.List("")
	if err != nil {
		return nil, err
	}
	pages := make([]*content.Page, 0, len(metas))
	for _, m := range metas {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := s.store.Read(m.Path)
		if err != nil {
			return nil, err
		}
		p, err := document.Decode(data, document.Defaults{
			Name: strings.TrimSuffix(m.Path, path.Ext(m.Path)),
			Time: m.UpdatedAt,
		})
		if err != nil {
			return nil, fmt.Errorf("storage: %s: %w", m.Path, err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// Fingerprint summarises the current directory contents. It changes
// whenever a page file is added, removed, edited or touched. The
// modification time counts because it is the default page time.
func (s *DirSource) Fingerprint() (string, error) {
	metas, err := s.store.List("")
	if err != nil {
		return "", err
	}
	sums := make(map[string]string, len(metas))
	for _, m := range metas {
		sums[m.Path] = m.Checksum + "@" + m.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}
	return checksum.Fingerprint(sums), nil
}

// Export writes every page as <name>.yaml under the provider root.
func Export(store Provider, pages []*content.Page) error {
	for _, p := range pages {
		data, err := document.Encode(p)
		if err != nil {
			return err
		}
		if err := store.Write(p.Name()+".yaml", data); err != nil {
			return err
		}
	}
	return nil
}
