package store

import (
	"github.com/spf13/cast"
)

// DefaultPageSize is the page size used when none has been saved.
const DefaultPageSize = 10

// Widths returns the saved column widths under key.
// Values that do not coerce to a number come back as 0.
func Widths(port Port, key string) map[string]int {

	widths := map[string]int{}

	raw, ok := port.Get(WidthCategory, key, nil).(map[string]any)
	if !ok {
		return widths
	}

	for field, val := range raw {
		width, err := cast.ToIntE(val)
		if err != nil {
			width = 0
		}
		widths[field] = width
	}
	return widths
}

// SetWidths saves column widths under key.
func SetWidths(port Port, key string, widths map[string]int) {
	port.Set(WidthCategory, key, widths)
}

// Visible returns the saved visible fields under key, nil if never saved.
func Visible(port Port, key string) []string {
	return toStrings(port.Get(HeaderCategory, key, nil))
}

// SetVisible saves the visible fields under key.
func SetVisible(port Port, key string, fields []string) {
	port.Set(HeaderCategory, key, nonNil(fields))
}

// Order returns the saved field order under key, nil if never saved.
func Order(port Port, key string) []string {
	return toStrings(port.Get(HeaderSortCategory, key, nil))
}

// SetOrder saves the field order, hidden fields included, under key.
func SetOrder(port Port, key string, fields []string) {
	port.Set(HeaderSortCategory, key, nonNil(fields))
}

// PageSize returns the saved page size under key, or dflt.
func PageSize(port Port, key string, dflt int) int {

	size, err := cast.ToIntE(port.Get(PageSizeCategory, key, dflt))
	if err != nil || size < 1 {
		return dflt
	}
	return size
}

// SetPageSize saves the page size under key.
func SetPageSize(port Port, key string, size int) {
	port.Set(PageSizeCategory, key, size)
}

// unexported

// toStrings converts a decoded list, keeping empty distinct from absent
func toStrings(val any) []string {

	list, ok := val.([]any)
	if !ok {
		strs, ok := val.([]string)
		if !ok {
			return nil
		}
		return append([]string{}, strs...)
	}

	fields := make([]string, 0, len(list))
	for _, item := range list {
		field, ok := item.(string)
		if !ok || field == "" {
			continue
		}
		fields = append(fields, field)
	}
	return fields
}

func nonNil(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}
