package document

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starford/leaflet/internal/apperr"
	"github.com/starford/leaflet/internal/content"
)

const homeYAML = `
name: home
time: 2024-03-01T10:00:00+01:00
version: 0.2.0
blocks:
  - kind: header
    text: Data Engineer, Problem Solver
    level: 2
  - kind: paragraph
    text: <b>hello</b>
  - id: 3f2504e0-4f89-41d3-9a0c-0305e82c3301
    kind: list
    style: ordered
    items: [a, b, c]
`

func TestDecode_FullPage(t *testing.T) {
	p, err := Decode([]byte(homeYAML), Defaults{})
	require.NoError(t, err)

	assert.Equal(t, "home", p.Name())
	assert.Equal(t, "0.2.0", p.Version())
	assert.True(t, p.Time().Equal(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, p.Time().Location())

	blocks := p.Blocks()
	require.Len(t, blocks, 3)

	h := blocks[0].(*content.Header)
	assert.Equal(t, 2, h.Level())
	assert.Equal(t, "Data Engineer, Problem Solver", h.Text())

	assert.Equal(t, "<b>hello</b>", blocks[1].(*content.Paragraph).Text())

	l := blocks[2].(*content.List)
	assert.Equal(t, uuid.MustParse("3f2504e0-4f89-41d3-9a0c-0305e82c3301"), l.ID())
	assert.Equal(t, content.ListOrdered, l.Style())
	assert.Equal(t, []string{"a", "b", "c"}, l.Items())
}

func TestDecode_DerivedIDsAreStable(t *testing.T) {
	a, err := Decode([]byte(homeYAML), Defaults{})
	require.NoError(t, err)
	b, err := Decode([]byte(homeYAML), Defaults{})
	require.NoError(t, err)

	assert.Equal(t, a.Block(0).ID(), b.Block(0).ID())
	assert.NotEqual(t, a.Block(0).ID(), a.Block(1).ID())
	assert.Equal(t, uuid.NewSHA1(Namespace, []byte("home#0")), a.Block(0).ID())
}

func TestDecode_Defaults(t *testing.T) {
	mod := time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC)
	p, err := Decode([]byte("blocks:\n  - kind: header\n    text: hi\n"), Defaults{Name: "about", Time: mod})
	require.NoError(t, err)

	assert.Equal(t, "about", p.Name())
	assert.True(t, p.Time().Equal(mod))
	assert.Equal(t, "", p.Version())
	assert.Equal(t, defaultHeaderLevel, p.Block(0).(*content.Header).Level())
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown kind", "name: x\nblocks:\n  - kind: image\n", apperr.ErrUnknownKind},
		{"bad style", "name: x\nblocks:\n  - kind: list\n    style: zigzag\n", apperr.ErrInvalidListStyle},
		{"nil id", "name: x\nblocks:\n  - kind: paragraph\n    id: 00000000-0000-0000-0000-000000000000\n", apperr.ErrMissingBlockID},
		{"duplicate id", "name: x\nblocks:\n  - kind: paragraph\n    id: 3f2504e0-4f89-41d3-9a0c-0305e82c3301\n  - kind: paragraph\n    id: 3f2504e0-4f89-41d3-9a0c-0305e82c3301\n", apperr.ErrDuplicateBlockID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.doc), Defaults{})
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := Decode([]byte("name: x\ncolour: red\n"), Defaults{})
	assert.Error(t, err, "unknown fields must be rejected")

	_, err = Decode([]byte("blocks: []\n"), Defaults{})
	assert.Error(t, err, "a page needs a name")

	_, err = Decode([]byte("name: x\nblocks:\n  - kind: paragraph\n    id: not-a-uuid\n"), Defaults{})
	assert.Error(t, err)
}

func TestEncode_RoundTripKeepsIDsAndOrder(t *testing.T) {
	orig, err := Decode([]byte(homeYAML), Defaults{})
	require.NoError(t, err)

	data, err := Encode(orig)
	require.NoError(t, err)

	back, err := Decode(data, Defaults{Name: "ignored"})
	require.NoError(t, err)

	assert.Equal(t, orig.Name(), back.Name())
	assert.Equal(t, orig.Version(), back.Version())
	assert.True(t, orig.Time().Equal(back.Time()))
	require.Equal(t, orig.Len(), back.Len())
	for i := range orig.Blocks() {
		assert.Equal(t, orig.Block(i).ID(), back.Block(i).ID())
		assert.Equal(t, orig.Block(i).Kind(), back.Block(i).Kind())
	}
	assert.Equal(t, []string{"a", "b", "c"}, back.Block(2).(*content.List).Items())
}
