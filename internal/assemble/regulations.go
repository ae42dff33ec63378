package assemble

import (
	"github.com/goliatone/go-formdoc/pkg/formdoc"
	"github.com/goliatone/go-formdoc/pkg/model"
)

const appendixTitle = "REGULATIONS / CUMPLIMIENTO NORMATIVO"

// missingDescription keeps three blank lines visible when a regulation id
// has no catalog match, so the disclosure still reserves space on the page.
const missingDescription = "\n\n\n"

// aggregator accumulates regulation disclosures triggered by checked,
// regulation-flagged checkbox items. It is request scoped: every build gets
// a fresh instance, and entries are recorded once per item occurrence —
// duplicates are intentional, matching the per-occurrence invariant.
type aggregator struct {
	catalog formdoc.RegulationCatalog
	entries []model.AppendixEntry
}

func newAggregator(catalog formdoc.RegulationCatalog) *aggregator {
	return &aggregator{catalog: catalog}
}

// record appends a disclosure for the given item label and regulation id.
// A lookup miss still records the entry with placeholder text: a disclosure
// with no resolved body beats silently dropping it.
func (g *aggregator) record(label, regulationID string) {
	name, description := "", missingDescription
	if record, ok := g.catalog.Find(regulationID); ok {
		name = record.Name
		if record.Description != "" {
			description = record.Description
		}
	}

	g.entries = append(g.entries, model.AppendixEntry{
		Label: "* " + label,
		Text:  name + "\n" + description,
	})
}

// drain returns the accumulated entries in recording order.
func (g *aggregator) drain() []model.AppendixEntry {
	return g.entries
}
