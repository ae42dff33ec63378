package formdoc

import "strings"

// Asset base prefixes for the storage migration. Values that still reference
// the deprecated proxy are rewritten to the current image host; everything
// else passes through untouched.
const (
	DefaultOldAssetBase = "https://tcgmsgnwoxbavyucytdr.supabase.co/functions/v1/r2Proxy/"
	DefaultNewAssetBase = "https://r2-images.martin-lm-dev.workers.dev/images/"
)

// NormalizeAssetURLs returns a copy of doc where every string item value
// beginning with oldBase has that prefix replaced by newBase. Non-string
// values and strings under other prefixes are left as-is. The input document
// is never mutated, and the operation is idempotent as long as newBase does
// not itself start with oldBase.
func NormalizeAssetURLs(doc FormDocument, oldBase, newBase string) FormDocument {
	if oldBase == "" {
		return doc.Clone()
	}

	out := doc.Clone()
	for s := range out.Sections {
		for c := range out.Sections[s].Columns {
			items := out.Sections[s].Columns[c].Items
			for i := range items {
				value, ok := items[i].Value.(string)
				if !ok {
					continue
				}
				if strings.HasPrefix(value, oldBase) {
					items[i].Value = newBase + strings.TrimPrefix(value, oldBase)
				}
			}
		}
	}
	return out
}

// Clone returns a deep copy of the document. Item values are shared when they
// are scalars; callers replacing values must assign, not mutate in place.
func (d FormDocument) Clone() FormDocument {
	out := FormDocument{Sections: make([]Section, len(d.Sections))}
	for s, section := range d.Sections {
		copied := section
		copied.Columns = make([]Column, len(section.Columns))
		for c, column := range section.Columns {
			columnCopy := column
			columnCopy.Items = make([]Item, len(column.Items))
			copy(columnCopy.Items, column.Items)
			copied.Columns[c] = columnCopy
		}
		out.Sections[s] = copied
	}
	return out
}
