package assemble

import (
	"context"
	"sort"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
	"github.com/goliatone/go-formdoc/pkg/model"
)

// columnsPerTable is fixed: sections lay out as two-column tables and an odd
// trailing column pairs with an empty placeholder.
const columnsPerTable = 2

type sectionInput struct {
	breakBefore bool
	language    formdoc.Language
	regulations *aggregator
	linkImages  bool
}

// assembleSection emits the title block followed by one table block per
// column pair, in sorted column order.
func (a *Assembler) assembleSection(ctx context.Context, section formdoc.Section, in sectionInput) []model.Block {
	blocks := []model.Block{model.TitleBlock{
		Text:            section.Title.Resolve(in.language),
		PageBreakBefore: in.breakBefore,
	}}

	columns := make([]formdoc.Column, len(section.Columns))
	copy(columns, section.Columns)
	sort.SliceStable(columns, func(i, j int) bool {
		return columns[i].Order < columns[j].Order
	})
	for i := range columns {
		items := make([]formdoc.Item, len(columns[i].Items))
		copy(items, columns[i].Items)
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Order < items[b].Order
		})
		columns[i].Items = items
	}

	for i := 0; i < len(columns); i += columnsPerTable {
		end := min(i+columnsPerTable, len(columns))
		blocks = append(blocks, a.assemblePair(ctx, columns[i:end:end], in))
	}
	return blocks
}

// assemblePair interleaves the items of up to two columns row by row. An odd
// trailing column is paired with an empty placeholder column, and every row
// is padded to the pair width so the table stays rectangular.
func (a *Assembler) assemblePair(ctx context.Context, pair []formdoc.Column, in sectionInput) model.TableBlock {
	for len(pair) < columnsPerTable {
		pair = append(pair, formdoc.Column{})
	}

	widths := make([]string, len(pair))
	for i := range widths {
		widths[i] = "*"
	}

	header := make([]model.Cell, len(pair))
	maxItems := 0
	for i, column := range pair {
		header[i] = model.TextCell(column.Title.Resolve(in.language), model.StyleColumnHeader)
		if len(column.Items) > maxItems {
			maxItems = len(column.Items)
		}
	}

	rows := [][]model.Cell{header}
	for j := 0; j < maxItems; j++ {
		row := make([]model.Cell, len(pair))
		extra := make([]model.Cell, len(pair))
		extraUsed := false

		for c, column := range pair {
			if j >= len(column.Items) {
				row[c] = model.EmptyCell()
				extra[c] = model.EmptyCell()
				continue
			}
			item := column.Items[j]
			row[c] = a.renderItemCell(item, in)

			cell, used := a.renderDetailCell(ctx, item, in)
			extra[c] = cell
			if used {
				extraUsed = true
			}
		}

		rows = append(rows, row)
		if extraUsed {
			rows = append(rows, extra)
		}
	}

	return model.TableBlock{Widths: widths, Rows: rows}
}
