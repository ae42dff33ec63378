package assemble

import (
	"html"
	"strconv"
	"sync"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formdoc/pkg/formdoc"
)

// stringValue coerces the loosely typed item value into display text. JSON
// numbers arrive as float64; integral values print without a decimal point.
func stringValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// isChecked applies checkbox truthiness: the boolean true or the string
// "true"; everything else is unchecked.
func isChecked(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// acceptedTimeLayouts are the input formats the form editors emit.
var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// formatDateTime renders a datetime value in the locale convention of the
// requested language. Absent or unparsable values render empty.
func formatDateTime(value string, lang formdoc.Language) string {
	t, ok := parseTime(value)
	if !ok {
		return ""
	}
	if lang == formdoc.LanguageSpanish {
		return t.Format("2/1/2006, 15:04:05")
	}
	return t.Format("1/2/2006, 3:04:05 PM")
}

// formatDate renders only the date portion, used by the work order header.
func formatDate(value string, lang formdoc.Language) (string, bool) {
	t, ok := parseTime(value)
	if !ok {
		return "", false
	}
	if lang == formdoc.LanguageSpanish {
		return t.Format("2/1/2006"), true
	}
	return t.Format("1/2/2006"), true
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips any markup from free-text values before they enter a
// text cell. Form payloads travel through browser editors and occasionally
// pick up pasted HTML fragments.
func sanitizeText(raw string) string {
	if raw == "" {
		return ""
	}
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	// The policy entity-escapes what it keeps; unescape so plain text like
	// "A & B" survives into non-HTML renderers untouched.
	return html.UnescapeString(textPolicy.Sanitize(raw))
}
