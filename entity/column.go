package entity

// FillerField is the Field of the synthetic trailing column.
const FillerField = "empty"

// Column specifies a table column; Field is its identity.
type Column struct {
	Field  string `yaml:"field"`
	Title  string `yaml:"title,omitempty"`
	Width  int    `yaml:"width"`
	Format string `yaml:"format,omitempty"`
}

// Header returns the title, falling back to the field name.
func (col Column) Header() string {
	if col.Title != "" {
		return col.Title
	}
	return col.Field
}

// IsFiller reports whether the column is the synthetic filler.
func (col Column) IsFiller() bool {
	return col.Field == FillerField
}

// Fields returns the field name of each column, in order.
func Fields(columns []Column) []string {
	fields := make([]string, len(columns))
	for i, col := range columns {
		fields[i] = col.Field
	}
	return fields
}
