package layout

import (
	"slices"

	nt "colonnade/entity"
	"colonnade/store"
)

// Facets are the independently persisted column properties.
// A nil Visible or Order has never been saved.
type Facets struct {
	Widths  map[string]int
	Visible []string
	Order   []string
}

// LoadFacets reads all three facets saved under key.
func LoadFacets(port store.Port, key string) Facets {
	return Facets{
		Widths:  store.Widths(port, key),
		Visible: store.Visible(port, key),
		Order:   store.Order(port, key),
	}
}

// DefaultFacets shows every default column in default order.
func DefaultFacets(defaults []nt.Column) Facets {
	fields := nt.Fields(defaults)
	return Facets{
		Widths:  map[string]int{},
		Visible: fields,
		Order:   slices.Clone(fields),
	}
}

// Resolve merges defaults with facets into the final column list:
// ordered, filtered to visible, width overridden and ending in the filler.
func Resolve(defaults []nt.Column, fct Facets) []nt.Column {

	byField := make(map[string]nt.Column, len(defaults))
	for _, col := range defaults {
		byField[col.Field] = col
	}

	order := fct.Order
	if order == nil {
		order = nt.Fields(defaults)
	}

	visible := fct.Visible
	if visible == nil {
		visible = nt.Fields(defaults)
	}
	shown := make(map[string]bool, len(visible))
	for _, field := range visible {
		shown[field] = true
	}

	placed := map[string]bool{}
	columns := []nt.Column{}
	for _, field := range order {
		col, ok := byField[field]
		if !ok || !shown[field] || placed[field] {
			continue
		}
		placed[field] = true

		// zero is as good as absent
		if width := fct.Widths[field]; width != 0 {
			col.Width = width
		}
		columns = append(columns, col)
	}

	return append(columns, Filler(columns))
}

// Filler returns the synthetic trailing column.
// Its width is what remains of the columns' own total once they are laid
// out, which is always zero; the table widens it to the panel when drawn.
func Filler(columns []nt.Column) nt.Column {

	total := 0
	for _, col := range columns {
		total += col.Width
	}

	return nt.Column{
		Field: nt.FillerField,
		Width: max(0, total-sumWidths(columns)),
	}
}

// Strip returns the final columns without the trailing filler.
func Strip(final []nt.Column) []nt.Column {

	columns := slices.Clone(final)
	last := len(columns) - 1
	if last >= 0 && columns[last].IsFiller() {
		columns = columns[:last]
	}
	return columns
}

// Snapshot returns facets that resolve back to the same final columns.
func Snapshot(final []nt.Column) Facets {

	columns := Strip(final)

	widths := make(map[string]int, len(columns))
	for _, col := range columns {
		widths[col.Field] = col.Width
	}

	fields := nt.Fields(columns)
	return Facets{
		Widths:  widths,
		Visible: fields,
		Order:   slices.Clone(fields),
	}
}

// Save persists all three facets under key.
func (fct Facets) Save(port store.Port, key string) {
	store.SetWidths(port, key, fct.Widths)
	store.SetVisible(port, key, fct.Visible)
	store.SetOrder(port, key, fct.Order)
}

// unexported

func sumWidths(columns []nt.Column) (sum int) {
	for _, col := range columns {
		sum += col.Width
	}
	return
}
