package assemble

import (
	"context"
	"testing"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
	"github.com/goliatone/go-formdoc/pkg/model"
)

func TestRenderItemCellText(t *testing.T) {
	a := New(Options{})
	cell := a.renderItemCell(formdoc.Item{
		Type:  formdoc.ItemTypeText,
		Label: formdoc.Bilingual{EN: "Operator"},
		Value: "J. Smith",
	}, englishInput())

	if cell.Text != "Operator: J. Smith" {
		t.Fatalf("cell text = %q", cell.Text)
	}
	if cell.Style != model.StyleItemText {
		t.Fatalf("cell style = %q", cell.Style)
	}
}

func TestRenderItemCellTextSanitizesMarkup(t *testing.T) {
	a := New(Options{})
	cell := a.renderItemCell(formdoc.Item{
		Type:  formdoc.ItemTypeText,
		Label: formdoc.Bilingual{EN: "Note"},
		Value: `<script>alert(1)</script>Pumps & valves`,
	}, englishInput())

	if cell.Text != "Note: Pumps & valves" {
		t.Fatalf("cell text = %q", cell.Text)
	}
}

func TestRenderItemCellNumber(t *testing.T) {
	a := New(Options{})
	cases := []struct {
		name string
		item formdoc.Item
		want string
	}{
		{
			"entered value",
			formdoc.Item{Type: formdoc.ItemTypeNumber, Label: formdoc.Bilingual{EN: "PSI"}, Value: float64(42)},
			"PSI: 42",
		},
		{
			"decimal survives",
			formdoc.Item{Type: formdoc.ItemTypeNumber, Label: formdoc.Bilingual{EN: "PSI"}, Value: 42.5},
			"PSI: 42.5",
		},
		{
			"falls back to default",
			formdoc.Item{Type: formdoc.ItemTypeNumber, Label: formdoc.Bilingual{EN: "PSI"}, Default: float64(7)},
			"PSI: 7",
		},
		{
			"zero when nothing set",
			formdoc.Item{Type: formdoc.ItemTypeNumber, Label: formdoc.Bilingual{EN: "PSI"}},
			"PSI: 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.renderItemCell(tc.item, englishInput()).Text; got != tc.want {
				t.Fatalf("cell text = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRenderItemCellDatetime(t *testing.T) {
	a := New(Options{})
	item := formdoc.Item{
		Type:  formdoc.ItemTypeDatetime,
		Label: formdoc.Bilingual{EN: "Inspected", ES: "Inspeccionado"},
		Value: "2026-03-05T14:30",
	}

	en := englishInput()
	if got := a.renderItemCell(item, en).Text; got != "Inspected: 3/5/2026, 2:30:00 PM" {
		t.Fatalf("en cell = %q", got)
	}

	es := sectionInput{language: formdoc.LanguageSpanish, regulations: newAggregator(nil)}
	if got := a.renderItemCell(item, es).Text; got != "Inspeccionado: 5/3/2026, 14:30:00" {
		t.Fatalf("es cell = %q", got)
	}
}

func TestRenderItemCellDatetimeUnparsable(t *testing.T) {
	a := New(Options{})
	cell := a.renderItemCell(formdoc.Item{
		Type:  formdoc.ItemTypeDatetime,
		Label: formdoc.Bilingual{EN: "Inspected"},
		Value: "yesterday",
	}, englishInput())

	if cell.Text != "Inspected: " {
		t.Fatalf("cell text = %q", cell.Text)
	}
}

func TestRenderItemCellCheckbox(t *testing.T) {
	a := New(Options{})

	checked := a.renderItemCell(formdoc.Item{
		Type:  formdoc.ItemTypeCheckbox,
		Label: formdoc.Bilingual{EN: "Grounded"},
		Value: true,
	}, englishInput())
	if checked.Text != "[X] Grounded" {
		t.Fatalf("checked cell = %q", checked.Text)
	}

	unchecked := a.renderItemCell(formdoc.Item{
		Type:  formdoc.ItemTypeCheckbox,
		Label: formdoc.Bilingual{EN: "Grounded"},
		Value: false,
	}, englishInput())
	if unchecked.Text != "[ ] Grounded" {
		t.Fatalf("unchecked cell = %q", unchecked.Text)
	}

	stringTrue := a.renderItemCell(formdoc.Item{
		Type:  formdoc.ItemTypeCheckbox,
		Label: formdoc.Bilingual{EN: "Grounded"},
		Value: "true",
	}, englishInput())
	if stringTrue.Text != "[X] Grounded" {
		t.Fatalf(`string "true" cell = %q`, stringTrue.Text)
	}
}

func TestRenderItemCellCheckboxRecordsRegulation(t *testing.T) {
	a := New(Options{})
	in := englishInput()

	a.renderItemCell(formdoc.Item{
		Type:         formdoc.ItemTypeCheckbox,
		Label:        formdoc.Bilingual{EN: "Leak test"},
		Value:        true,
		Regulation:   true,
		RegulationID: "reg-2",
	}, in)

	// Unchecked and unflagged items do not record.
	a.renderItemCell(formdoc.Item{
		Type: formdoc.ItemTypeCheckbox, Label: formdoc.Bilingual{EN: "Leak test"},
		Value: false, Regulation: true, RegulationID: "reg-2",
	}, in)
	a.renderItemCell(formdoc.Item{
		Type: formdoc.ItemTypeCheckbox, Label: formdoc.Bilingual{EN: "Leak test"},
		Value: true, Regulation: false,
	}, in)

	entries := in.regulations.drain()
	if len(entries) != 1 {
		t.Fatalf("expected 1 recorded entry, got %d", len(entries))
	}
	if entries[0].Label != "* Leak test" {
		t.Fatalf("entry label = %q", entries[0].Label)
	}
}

func TestRenderItemCellUnknownTypeDegradesToLabel(t *testing.T) {
	a := New(Options{})
	cell := a.renderItemCell(formdoc.Item{
		Type:  "hologram",
		Label: formdoc.Bilingual{EN: "Future field"},
		Value: "whatever",
	}, englishInput())

	if cell.Text != "Future field" {
		t.Fatalf("cell text = %q", cell.Text)
	}
	if cell.Style != model.StyleItemLabel {
		t.Fatalf("cell style = %q", cell.Style)
	}
}

func TestRenderItemCellFallsBackToItemID(t *testing.T) {
	a := New(Options{})
	cell := a.renderItemCell(formdoc.Item{
		ID:    "item-77",
		Type:  formdoc.ItemTypeText,
		Value: "x",
	}, englishInput())

	if cell.Text != "item-77: x" {
		t.Fatalf("cell text = %q", cell.Text)
	}
}

func TestRenderDetailCellTextareaFiller(t *testing.T) {
	a := New(Options{})
	cell, used := a.renderDetailCell(context.Background(), formdoc.Item{
		Type:  formdoc.ItemTypeTextarea,
		Label: formdoc.Bilingual{EN: "Notes"},
	}, englishInput())

	if !used {
		t.Fatal("textarea detail cell should always be used")
	}
	if cell.Text != textareaFiller {
		t.Fatalf("empty textarea should render the filler, got %q", cell.Text)
	}
}

func TestRenderDetailCellMediaSampleFallback(t *testing.T) {
	images := &stubImages{resolved: map[string]string{
		"https://img.example.com/sample.jpg": "data:image/jpeg;base64,cw==",
	}}
	a := New(Options{Images: images})

	cell, used := a.renderDetailCell(context.Background(), formdoc.Item{
		Type:              formdoc.ItemTypeDrawing,
		Label:             formdoc.Bilingual{EN: "Site sketch"},
		SampleMediaSource: "https://img.example.com/sample.jpg",
	}, englishInput())

	if !used || cell.Kind != model.CellImage {
		t.Fatalf("cell = %+v, used = %v", cell, used)
	}
	if images.calls[0] != "drawing|https://img.example.com/sample.jpg" {
		t.Fatalf("resolver called with %q", images.calls[0])
	}
}
