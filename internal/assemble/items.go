package assemble

import (
	"context"
	"strings"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
	"github.com/goliatone/go-formdoc/pkg/model"
)

// Display bounds reserved for embedded media cells, in points.
const (
	imageCellWidth  = 200
	imageCellHeight = 220
)

// textareaFiller preserves row height when a textarea has no entered value.
const textareaFiller = "\n\n\n\n\n\n"

// renderItemCell maps an item to its label-row cell, dispatching on the type
// tag. Unknown types fall through to a label-only cell so new item kinds
// degrade visibly instead of breaking the build.
func (a *Assembler) renderItemCell(item formdoc.Item, in sectionInput) model.Cell {
	label := itemLabel(item, in.language)
	value := stringValue(item.Value)

	switch item.Type {
	case formdoc.ItemTypeText:
		return model.TextCell(label+": "+sanitizeText(value), model.StyleItemText)

	case formdoc.ItemTypeNumber:
		if value == "" {
			value = stringValue(item.Default)
		}
		if value == "" {
			value = "0"
		}
		return model.TextCell(label+": "+value, model.StyleItemText)

	case formdoc.ItemTypeDatetime:
		return model.TextCell(label+": "+formatDateTime(value, in.language), model.StyleItemText)

	case formdoc.ItemTypeCheckbox:
		checked := isChecked(item.Value)
		if checked && item.Regulation {
			in.regulations.record(label, item.RegulationID)
		}
		mark := "[ ]"
		if checked {
			mark = "[X]"
		}
		return model.TextCell(mark+" "+label, model.StyleItemText)

	case formdoc.ItemTypeTextarea:
		return model.TextCell(label, model.StyleItemText)

	case formdoc.ItemTypePhoto, formdoc.ItemTypeSignature, formdoc.ItemTypeLocation, formdoc.ItemTypeDrawing:
		return model.TextCell(label, model.StyleItemLabel)

	default:
		return model.TextCell(label, model.StyleItemLabel)
	}
}

// renderDetailCell produces the second-row cell for items that occupy two
// rows: media items get an embedded image, textareas get their body text.
// The bool result reports whether the cell holds anything; detail rows are
// emitted only when at least one cell in them does.
func (a *Assembler) renderDetailCell(ctx context.Context, item formdoc.Item, in sectionInput) (model.Cell, bool) {
	switch {
	case item.Type.IsMedia():
		source := strings.TrimSpace(stringValue(item.Value))
		if source == "" {
			source = strings.TrimSpace(item.SampleMediaSource)
		}

		dataURI := a.resolveImage(ctx, source, string(item.Type))
		if dataURI == "" {
			// No remote payload and no placeholder: the slot renders empty
			// rather than failing the document.
			return model.EmptyCell(), false
		}

		cell := model.Cell{
			Kind: model.CellImage,
			Image: &model.ImageData{
				DataURI: dataURI,
				Width:   imageCellWidth,
				Height:  imageCellHeight,
			},
		}
		if in.linkImages && source != "" {
			cell.Link = source
		}
		return cell, true

	case item.Type == formdoc.ItemTypeTextarea:
		body := sanitizeText(stringValue(item.Value))
		if body == "" {
			body = textareaFiller
		}
		return model.TextCell(body, model.StyleItemText), true

	default:
		return model.EmptyCell(), false
	}
}

func itemLabel(item formdoc.Item, lang formdoc.Language) string {
	if label := item.Label.Resolve(lang); label != "" {
		return label
	}
	return item.ID
}
