package resolver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/leaflet/internal/content"
	"github.com/starford/leaflet/internal/seed"
)

func seeded(t *testing.T) (*Resolver, *content.Store) {
	t.Helper()
	s, err := content.Load(context.Background(), seed.Source{})
	require.NoError(t, err)
	return New(s, nil), s
}

func TestResolvePage_PresentNames(t *testing.T) {
	r, s := seeded(t)
	ctx := context.Background()
	for _, name := range s.Names() {
		p, ok := r.ResolvePage(ctx, name)
		require.True(t, ok, name)
		assert.Equal(t, name, p.Name())
	}
}

func TestResolvePage_Absent(t *testing.T) {
	r, _ := seeded(t)
	for _, name := range []string{"nonexistent-page", "HOME", "", "home/"} {
		p, ok := r.ResolvePage(context.Background(), name)
		assert.False(t, ok, name)
		assert.Nil(t, p, name)

		v, ok := r.ResolveView(context.Background(), name)
		assert.False(t, ok)
		assert.Nil(t, v)
	}
}

func TestResolvePage_HomeScenario(t *testing.T) {
	r, _ := seeded(t)
	p, ok := r.ResolvePage(context.Background(), "home")
	require.True(t, ok)

	blocks := p.Blocks()
	require.Len(t, blocks, 2)
	require.Equal(t, content.KindHeader, blocks[0].Kind())
	assert.Equal(t, 2, blocks[0].(*content.Header).Level())
	assert.Equal(t, content.KindParagraph, blocks[1].Kind())
}

func TestResolvePage_BoundToLibrary(t *testing.T) {
	first, err := content.Load(context.Background(), seed.Source{})
	require.NoError(t, err)
	lib := content.NewLibrary(first)
	r := New(lib, nil)

	only, _ := content.NewPage("only", time.Now(), nil, "")
	next, _ := content.NewStore(only)
	lib.Publish(next)

	_, ok := r.ResolvePage(context.Background(), "home")
	assert.False(t, ok)
	_, ok = r.ResolvePage(context.Background(), "only")
	assert.True(t, ok)
	assert.Equal(t, []string{"only"}, r.PageNames(context.Background()))
}

func TestProject_OrderAndPayloads(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	stamp := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p, err := content.NewPage("doc", stamp, []content.Block{
		content.NewList(ids[0], content.ListOrdered, []string{"a", "b", "c"}),
		content.NewParagraph(ids[1], "para"),
		content.NewHeader(ids[2], "head", 4),
	}, "1.2.3")
	require.NoError(t, err)

	v := Project(p)
	assert.Equal(t, "doc", v.Name)
	assert.Equal(t, "1.2.3", v.Version)
	assert.Equal(t, stamp, v.Time)
	require.Len(t, v.Blocks, 3)

	for i, b := range v.Blocks {
		assert.Equal(t, ids[i], b.ID)
	}
	assert.Equal(t, ListData{Style: content.ListOrdered, Items: []string{"a", "b", "c"}}, v.Blocks[0].Data)
	assert.Equal(t, ParagraphData{Text: "para"}, v.Blocks[1].Data)
	assert.Equal(t, HeaderData{Text: "head", Level: 4}, v.Blocks[2].Data)
	assert.Equal(t, content.KindHeader, v.Blocks[2].Type)
}

func TestProject_JSONShape(t *testing.T) {
	id := uuid.MustParse("3f2504e0-4f89-41d3-9a0c-0305e82c3301")
	p, err := content.NewPage("x", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), []content.Block{
		content.NewList(id, content.ListUnordered, nil),
	}, "0.1.0")
	require.NoError(t, err)

	data, err := json.Marshal(Project(p))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "x",
		"time": "2024-01-01T00:00:00Z",
		"version": "0.1.0",
		"blocks": [
			{"id": "3f2504e0-4f89-41d3-9a0c-0305e82c3301", "type": "list", "data": {"style": "UNORDERED", "items": []}}
		]
	}`, string(data))
}

func TestProject_EmptyPage(t *testing.T) {
	p, _ := content.NewPage("empty", time.Now(), nil, "")
	data, err := json.Marshal(Project(p))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"blocks":[]`)
}
