package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Field describes a field available from a row source.
type Field struct {
	Name string
	Type string
}

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string, nested values as json.
func (v Value) String() string {

	switch raw := v.Raw.(type) {
	case nil:
		return ""
	case string:
		return raw
	case map[string]any, []any:
		data, err := json.Marshal(raw)
		if err == nil {
			return string(data)
		}
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Line represents a single row as an ordered list of values.
// The order corresponds to the fields returned by the row source.
type Line struct {
	Id     string
	Values []Value
}
