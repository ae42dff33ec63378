package assemble

import (
	"testing"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
)

func headerValues(section formdoc.Section) map[string]string {
	values := make(map[string]string)
	for _, item := range section.Columns[0].Items {
		values[item.Label.EN] = item.Value.(string)
	}
	return values
}

func TestWorkOrderSectionShape(t *testing.T) {
	section := workOrderSection(formdoc.OrderMetadata{}, formdoc.LanguageEnglish)

	if section.ID != "work-order-info" {
		t.Fatalf("section id = %q", section.ID)
	}
	if section.Order != 0 || !section.Show {
		t.Fatalf("section order/show = %d/%v", section.Order, section.Show)
	}
	if len(section.Columns) != 1 {
		t.Fatalf("expected 1 column, got %d", len(section.Columns))
	}
	if got := len(section.Columns[0].Items); got != 8 {
		t.Fatalf("expected 8 header items, got %d", got)
	}
}

func TestWorkOrderSectionFullMetadata(t *testing.T) {
	section := workOrderSection(formdoc.OrderMetadata{
		OrderNumber:    "WO-2026-0117",
		Description:    "Quarterly tank inspection",
		Customer:       "Acme Fuels",
		Branch:         "North",
		Location:       "Station 12",
		LeadTechnician: "R. Vega",
		StartDate:      "2026-02-01",
		EndDate:        "2026-02-03",
	}, formdoc.LanguageEnglish)

	values := headerValues(section)
	if values["Work Order"] != "WO-2026-0117" {
		t.Fatalf("work order = %q", values["Work Order"])
	}
	if values["Customer"] != "Acme Fuels" {
		t.Fatalf("customer = %q", values["Customer"])
	}
	if values["Start Date"] != "2/1/2026" {
		t.Fatalf("start date = %q", values["Start Date"])
	}
	if values["End Date"] != "2/3/2026" {
		t.Fatalf("end date = %q", values["End Date"])
	}
}

func TestWorkOrderSectionMissingValues(t *testing.T) {
	en := headerValues(workOrderSection(formdoc.OrderMetadata{}, formdoc.LanguageEnglish))
	if en["Customer"] != "N/A" {
		t.Fatalf("en fallback = %q", en["Customer"])
	}
	if en["Start Date"] != "Pending" {
		t.Fatalf("en start date fallback = %q", en["Start Date"])
	}
	if en["End Date"] != "In Progress" {
		t.Fatalf("en end date fallback = %q", en["End Date"])
	}

	es := headerValues(workOrderSection(formdoc.OrderMetadata{}, formdoc.LanguageSpanish))
	if es["Customer"] != "N/D" {
		t.Fatalf("es fallback = %q", es["Customer"])
	}
	if es["Start Date"] != "Pendiente" {
		t.Fatalf("es start date fallback = %q", es["Start Date"])
	}
	if es["End Date"] != "En Progreso" {
		t.Fatalf("es end date fallback = %q", es["End Date"])
	}
}

func TestWorkOrderSectionSpanishDates(t *testing.T) {
	section := workOrderSection(formdoc.OrderMetadata{
		StartDate: "2026-02-01",
	}, formdoc.LanguageSpanish)

	values := headerValues(section)
	if values["Start Date"] != "1/2/2026" {
		t.Fatalf("es start date = %q", values["Start Date"])
	}
}

func TestWorkOrderSectionBilingualLabels(t *testing.T) {
	section := workOrderSection(formdoc.OrderMetadata{}, formdoc.LanguageEnglish)

	item := section.Columns[0].Items[0]
	if item.Label.EN != "Work Order" || item.Label.ES != "Orden de Trabajo" {
		t.Fatalf("label = %+v", item.Label)
	}
	if section.Title.ES != "INFORMACIÓN DE LA ORDEN DE TRABAJO" {
		t.Fatalf("section title ES = %q", section.Title.ES)
	}
}
