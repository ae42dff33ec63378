package formdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Decode parses a raw form document payload. JSON is tried first; payloads
// that are not valid JSON fall back to YAML so documents can be authored in
// either format. Missing sections/columns/items arrays decode to empty
// slices rather than failing the build.
func Decode(raw []byte) (FormDocument, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return FormDocument{}, errors.New("formdoc: payload is empty")
	}

	var doc FormDocument
	jsonErr := json.Unmarshal(raw, &doc)
	if jsonErr != nil {
		// The payload may be a bare section list, the shape emitted by some
		// upstream form editors.
		var sections []Section
		if err := json.Unmarshal(raw, &sections); err == nil {
			doc = FormDocument{Sections: sections}
			jsonErr = nil
		}
	}
	if jsonErr != nil {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return FormDocument{}, fmt.Errorf("formdoc: decode payload: %w", jsonErr)
		}
	}

	doc.normalizeEmpty()
	return doc, nil
}

// DecodeSections parses a payload that holds only the section array.
func DecodeSections(raw []byte) ([]Section, error) {
	doc, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	return doc.Sections, nil
}

func (d *FormDocument) normalizeEmpty() {
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	for i := range d.Sections {
		if d.Sections[i].Columns == nil {
			d.Sections[i].Columns = []Column{}
		}
		for j := range d.Sections[i].Columns {
			if d.Sections[i].Columns[j].Items == nil {
				d.Sections[i].Columns[j].Items = []Item{}
			}
		}
	}
}
