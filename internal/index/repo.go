package index

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/starford/leaflet/internal/content"
)

// blockRow is the column form of a block.
type blockRow struct {
	id    string
	kind  string
	text  string
	level int
	style string
	items string
	err   error
}

func (r *blockRow) VisitParagraph(p *content.Paragraph) {
	*r = blockRow{id: p.ID().String(), kind: string(p.Kind()), text: p.Text(), items: "[]"}
}

func (r *blockRow) VisitHeader(h *content.Header) {
	*r = blockRow{id: h.ID().String(), kind: string(h.Kind()), text: h.Text(), level: h.Level(), items: "[]"}
}

func (r *blockRow) VisitList(l *content.List) {
	items, err := json.Marshal(l.Items())
	*r = blockRow{id: l.ID().String(), kind: string(l.Kind()), style: string(l.Style()), items: string(items), err: err}
}

func (r *blockRow) block() (content.Block, error) {
	id, err := uuid.Parse(r.id)
	if err != nil {
		return nil, fmt.Errorf("index: block id %q: %w", r.id, err)
	}
	kind, err := content.ParseKind(r.kind)
	if err != nil {
		return nil, err
	}
	switch kind {
	case content.KindHeader:
		return content.NewHeader(id, r.text, r.level), nil
	case content.KindList:
		style, err := content.ParseListStyle(r.style)
		if err != nil {
			return nil, err
		}
		var items []string
		if err := json.Unmarshal([]byte(r.items), &items); err != nil {
			return nil, fmt.Errorf("index: block %s items: %w", r.id, err)
		}
		return content.NewList(id, style, items), nil
	default:
		return content.NewParagraph(id, r.text), nil
	}
}

// ReplacePages swaps the whole page set for pages within one transaction.
func (db *DB) ReplacePages(ctx context.Context, pages []*content.Page) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("index: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // best-effort on failure path

	if _, err := tx.ExecContext(ctx, `DELETE FROM blocks`); err != nil {
		return fmt.Errorf("index: clear blocks: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM pages`); err != nil {
		return fmt.Errorf("index: clear pages: %w", err)
	}

	pageStmt, err := tx.PrepareContext(ctx, `INSERT INTO pages (name, time, version) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("index: prepare page insert: %w", err)
	}
	defer pageStmt.Close()

	blockStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO blocks (id, page, position, kind, text, level, style, items)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("index: prepare block insert: %w", err)
	}
	defer blockStmt.Close()

	var row blockRow
	for _, p := range pages {
		if _, err := pageStmt.ExecContext(ctx, p.Name(), p.Time().Format(time.RFC3339Nano), p.Version()); err != nil {
			return fmt.Errorf("index: insert page %q: %w", p.Name(), err)
		}
		for pos, b := range p.Blocks() {
			b.Accept(&row)
			if row.err != nil {
				return fmt.Errorf("index: encode block %s items: %w", row.id, row.err)
			}
			if _, err := blockStmt.ExecContext(ctx, row.id, p.Name(), pos, row.kind, row.text, row.level, row.style, row.items); err != nil {
				return fmt.Errorf("index: insert block %s: %w", row.id, err)
			}
		}
	}

	return tx.Commit()
}

// PageNames returns every stored page name in lexical order.
func (db *DB) PageNames(ctx context.Context) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT name FROM pages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("index: page names: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

type pageRow struct {
	name    string
	time    time.Time
	version string
	blocks  []content.Block
}

// Pages implements content.Source: it rebuilds every stored page with its
// blocks in stored position order.
func (db *DB) Pages(ctx context.Context) ([]*content.Page, error) {
	rows, err := db.conn.QueryContext(ctx, `SELECT name, time, version FROM pages ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("index: pages: %w", err)
	}
	defer rows.Close()

	var order []*pageRow
	byName := make(map[string]*pageRow)
	for rows.Next() {
		var (
			pr  pageRow
			raw string
		)
		if err := rows.Scan(&pr.name, &raw, &pr.version); err != nil {
			return nil, err
		}
		if pr.time, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("index: page %q time: %w", pr.name, err)
		}
		order = append(order, &pr)
		byName[pr.name] = &pr
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	brows, err := db.conn.QueryContext(ctx, `
		SELECT page, id, kind, text, level, style, items
		FROM blocks
		ORDER BY page, position
	`)
	if err != nil {
		return nil, fmt.Errorf("index: blocks: %w", err)
	}
	defer brows.Close()

	for brows.Next() {
		var (
			page string
			r    blockRow
		)
		if err := brows.Scan(&page, &r.id, &r.kind, &r.text, &r.level, &r.style, &r.items); err != nil {
			return nil, err
		}
		pr, ok := byName[page]
		if !ok {
			continue
		}
		b, err := r.block()
		if err != nil {
			return nil, err
		}
		pr.blocks = append(pr.blocks, b)
	}
	if err := brows.Err(); err != nil {
		return nil, err
	}

	out := make([]*content.Page, 0, len(order))
	for _, pr := range order {
		p, err := content.NewPage(pr.name, pr.time, pr.blocks, pr.version)
		if err != nil {
			return nil, fmt.Errorf("index: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}
