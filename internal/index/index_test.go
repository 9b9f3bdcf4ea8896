package index

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/leaflet/internal/apperr"
	"github.com/starford/leaflet/internal/content"
	"github.com/starford/leaflet/internal/seed"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "leaflet-test-*.db")
	require.NoError(t, err)
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	require.NoError(t, db.conn.QueryRow(`SELECT count(*) FROM pages`).Scan(&count))
	require.NoError(t, db.conn.QueryRow(`SELECT count(*) FROM blocks`).Scan(&count))
}

func TestReplaceAndLoadPages(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	stamp := time.Date(2024, 2, 29, 8, 30, 0, 123, time.UTC)
	listID := uuid.New()
	doc, err := content.NewPage("doc", stamp, []content.Block{
		content.NewList(listID, content.ListOrdered, []string{"a", "b", "c"}),
		content.NewHeader(uuid.New(), "Title", 3),
		content.NewParagraph(uuid.New(), "<i>x</i>"),
		content.NewList(uuid.New(), content.ListUnordered, nil),
	}, "2.0.0")
	require.NoError(t, err)

	require.NoError(t, db.ReplacePages(ctx, []*content.Page{doc}))

	pages, err := db.Pages(ctx)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	got := pages[0]
	assert.Equal(t, "doc", got.Name())
	assert.Equal(t, "2.0.0", got.Version())
	assert.True(t, stamp.Equal(got.Time()))
	require.Equal(t, 4, got.Len())

	for i, b := range doc.Blocks() {
		assert.Equal(t, b.ID(), got.Block(i).ID())
		assert.Equal(t, b.Kind(), got.Block(i).Kind())
	}
	l := got.Block(0).(*content.List)
	assert.Equal(t, listID, l.ID())
	assert.Equal(t, content.ListOrdered, l.Style())
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())
	assert.Equal(t, 3, got.Block(1).(*content.Header).Level())
	assert.Equal(t, []string{}, got.Block(3).(*content.List).Items())
}

func TestReplacePages_ReplacesEverything(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	pages, err := seed.Source{}.Pages(ctx)
	require.NoError(t, err)
	require.NoError(t, db.ReplacePages(ctx, pages))

	names, err := db.PageNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "impressum"}, names)

	only, _ := content.NewPage("solo", time.Now(), nil, "")
	require.NoError(t, db.ReplacePages(ctx, []*content.Page{only}))

	names, _ = db.PageNames(ctx)
	assert.Equal(t, []string{"solo"}, names)

	var blocks int
	require.NoError(t, db.conn.QueryRow(`SELECT count(*) FROM blocks`).Scan(&blocks))
	assert.Zero(t, blocks)
}

func TestPages_AsContentSource(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	pages, _ := seed.Source{}.Pages(ctx)
	require.NoError(t, db.ReplacePages(ctx, pages))

	store, err := content.Load(ctx, db)
	require.NoError(t, err)
	home, ok := store.GetPage("home")
	require.True(t, ok)
	assert.Equal(t, content.KindHeader, home.Block(0).Kind())

	_, ok = store.GetPage("nonexistent-page")
	assert.False(t, ok)
}

func TestReplacePages_RollsBackOnDuplicateBlock(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	pages, _ := seed.Source{}.Pages(ctx)
	require.NoError(t, db.ReplacePages(ctx, pages))

	shared := uuid.New()
	a, _ := content.NewPage("a", time.Now(), []content.Block{content.NewParagraph(shared, "x")}, "")
	b, _ := content.NewPage("b", time.Now(), []content.Block{content.NewParagraph(shared, "y")}, "")
	assert.Error(t, db.ReplacePages(ctx, []*content.Page{a, b}))

	names, _ := db.PageNames(ctx)
	assert.Equal(t, []string{"home", "impressum"}, names, "failed import must leave the old pages")
}

func TestPages_BadKindSurfaces(t *testing.T) {
	db := testDB(t)
	_, err := db.conn.Exec(`INSERT INTO pages (name, time) VALUES ('p', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.conn.Exec(`INSERT INTO blocks (id, page, position, kind) VALUES (?, 'p', 0, 'video')`, uuid.NewString())
	require.NoError(t, err)

	_, err = db.Pages(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUnknownKind)
}
