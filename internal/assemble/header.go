package assemble

import (
	"github.com/goliatone/go-formdoc/pkg/formdoc"
)

// workOrderSection synthesizes the leading section that summarises the order
// metadata. It uses the same item shape as user-authored items so the rest
// of the pipeline treats it like any other section, and it is always visible
// with order 0 so it sorts first.
func workOrderSection(order formdoc.OrderMetadata, lang formdoc.Language) formdoc.Section {
	startDate := dateOrFallback(order.StartDate, lang, "Pending", "Pendiente")
	endDate := dateOrFallback(order.EndDate, lang, "In Progress", "En Progreso")

	items := []formdoc.Item{
		headerItem(0, "Work Order", "Orden de Trabajo", order.OrderNumber, lang),
		headerItem(1, "Service Description", "Descripción del Servicio", order.Description, lang),
		headerItem(2, "Customer", "Cliente", order.Customer, lang),
		headerItem(3, "Branch", "Sucursal", order.Branch, lang),
		headerItem(4, "Location", "Ubicación", order.Location, lang),
		headerItem(5, "Lead Technician", "Técnico Líder", order.LeadTechnician, lang),
		headerItem(6, "Start Date", "Fecha Inicio", startDate, lang),
		headerItem(7, "End Date", "Fecha Fin", endDate, lang),
	}

	return formdoc.Section{
		ID:    "work-order-info",
		Order: 0,
		Show:  true,
		Title: formdoc.Bilingual{
			EN: "WORK ORDER INFORMATION",
			ES: "INFORMACIÓN DE LA ORDEN DE TRABAJO",
		},
		Columns: []formdoc.Column{{
			ID:    "work-order-info-col",
			Order: 1,
			Title: formdoc.Bilingual{
				EN: "Work Order Information",
				ES: "Información del Servicio",
			},
			Items: items,
		}},
	}
}

func headerItem(order int, labelEN, labelES, value string, lang formdoc.Language) formdoc.Item {
	if value == "" {
		value = "N/A"
		if lang == formdoc.LanguageSpanish {
			value = "N/D"
		}
	}
	return formdoc.Item{
		ID:    "work-order-" + labelEN,
		Type:  formdoc.ItemTypeText,
		Order: order,
		Label: formdoc.Bilingual{EN: labelEN, ES: labelES},
		Value: value,
	}
}

// dateOrFallback formats a parsable date in the requested locale, otherwise
// returns the language-appropriate status word.
func dateOrFallback(value string, lang formdoc.Language, fallbackEN, fallbackES string) string {
	if formatted, ok := formatDate(value, lang); ok {
		return formatted
	}
	if lang == formdoc.LanguageSpanish {
		return fallbackES
	}
	return fallbackEN
}
