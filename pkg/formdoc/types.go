package formdoc

// ItemType is the closed enum of form item kinds. Unknown tags decode without
// error and render through the forward-compatible default branch.
type ItemType string

const (
	ItemTypeText      ItemType = "text"
	ItemTypeTextarea  ItemType = "textarea"
	ItemTypeNumber    ItemType = "number"
	ItemTypeDatetime  ItemType = "datetime"
	ItemTypeCheckbox  ItemType = "checkbox"
	ItemTypePhoto     ItemType = "photo"
	ItemTypeSignature ItemType = "signature"
	ItemTypeLocation  ItemType = "location"
	ItemTypeDrawing   ItemType = "drawing"
)

// IsMedia reports whether items of this type carry an image reference that
// resolves to an embedded image row.
func (t ItemType) IsMedia() bool {
	switch t {
	case ItemTypePhoto, ItemTypeSignature, ItemTypeLocation, ItemTypeDrawing:
		return true
	default:
		return false
	}
}

// Item is a single form field. Value holds whatever the author entered: a
// scalar for text-like items, a truthy flag for checkboxes, or a media source
// reference for photo/signature/location/drawing items.
type Item struct {
	ID                string    `json:"itemId" yaml:"itemId"`
	Type              ItemType  `json:"type" yaml:"type"`
	Order             int       `json:"order" yaml:"order"`
	Label             Bilingual `json:"itemLabel" yaml:"itemLabel"`
	Value             any       `json:"inputItem" yaml:"inputItem"`
	Default           any       `json:"default,omitempty" yaml:"default,omitempty"`
	Regulation        bool      `json:"regulation" yaml:"regulation"`
	RegulationID      string    `json:"idRegulation" yaml:"idRegulation"`
	SampleMediaSource string    `json:"inputSamplePhoto,omitempty" yaml:"inputSamplePhoto,omitempty"`
}

// Column groups items vertically inside a section. Columns are consumed in
// pairs when the section is laid out as a two-column table.
type Column struct {
	ID    string    `json:"columnId" yaml:"columnId"`
	Order int       `json:"order" yaml:"order"`
	Title Bilingual `json:"columnTitle" yaml:"columnTitle"`
	Items []Item    `json:"items" yaml:"items"`
}

// Section is the top-level visual grouping of a form document.
type Section struct {
	ID      string    `json:"sectionId" yaml:"sectionId"`
	Order   int       `json:"order" yaml:"order"`
	Show    bool      `json:"showSection" yaml:"showSection"`
	Title   Bilingual `json:"sectionTitle" yaml:"sectionTitle"`
	Columns []Column  `json:"columns" yaml:"columns"`
}

// FormDocument is the raw input consumed by the document pipeline.
type FormDocument struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// OrderMetadata feeds the synthetic work order header section.
type OrderMetadata struct {
	OrderNumber    string `json:"order_number" yaml:"order_number"`
	Description    string `json:"order_description" yaml:"order_description"`
	Customer       string `json:"customer" yaml:"customer"`
	Branch         string `json:"branch" yaml:"branch"`
	Location       string `json:"location" yaml:"location"`
	LeadTechnician string `json:"leadTechnician" yaml:"leadTechnician"`
	StartDate      string `json:"start_date" yaml:"start_date"`
	EndDate        string `json:"end_date" yaml:"end_date"`
}

// RegulationRecord is one entry of the external regulation catalog.
type RegulationRecord struct {
	ID          string `json:"id_regulation" yaml:"id_regulation"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// RegulationCatalog looks up regulation records by id. Lookups are exact
// string matches; a miss returns the zero record and false.
type RegulationCatalog []RegulationRecord

// Find returns the record whose ID equals id.
func (c RegulationCatalog) Find(id string) (RegulationRecord, bool) {
	for _, record := range c {
		if record.ID == id {
			return record, true
		}
	}
	return RegulationRecord{}, false
}
