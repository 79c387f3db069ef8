// Package layout reconciles default columns with persisted column facets.
package layout

import (
	"github.com/pkg/errors"

	nt "colonnade/entity"
	"colonnade/util"
)

// Layout is the caller's table definition as read from a yaml file.
type Layout struct {
	StorageKey       string      `yaml:"storage_key,omitempty"`
	ShowColumnConfig bool        `yaml:"show_column_config,omitempty"`
	PageSize         int         `yaml:"page_size,omitempty"`
	Columns          []nt.Column `yaml:"columns"`
}

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		err = errors.Wrapf(err, "failed to load layout")
		return
	}

	err = layout.validate()
	err = errors.Wrapf(err, "invalid layout %s", path)
	return
}

// unexported

func (layout *Layout) validate() (err error) {

	seen := map[string]bool{}
	for i, col := range layout.Columns {
		switch {
		case col.Field == "":
			return errors.Errorf("column %d has no field", i)
		case col.IsFiller():
			return errors.Errorf("column %d uses reserved field %q", i, nt.FillerField)
		case seen[col.Field]:
			return errors.Errorf("column %d repeats field %q", i, col.Field)
		case col.Width < 0:
			return errors.Errorf("column %q has negative width", col.Field)
		}
		seen[col.Field] = true
	}
	return
}
