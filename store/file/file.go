// Package file provides a medium keeping each item in a json file.
package file

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"
)

const (
	dirMode = 0o755
	ext     = ".json"
)

// File is a Medium storing each item as <dir>/<name>.json.
type File struct {
	dir string
}

func New(dir string) (fl *File, err error) {

	err = os.MkdirAll(dir, dirMode)
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", dir)
		return
	}

	fl = &File{dir: dir}
	return
}

// GetItem reads the item stored under name.
func (fl *File) GetItem(name string) (value string, ok bool, err error) {

	data, err := os.ReadFile(fl.path(name))
	if errors.Is(err, os.ErrNotExist) {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", name)
		return
	}

	value = string(data)
	ok = true
	return
}

// SetItem replaces the item stored under name, atomically.
func (fl *File) SetItem(name, value string) (err error) {

	err = atomic.WriteFile(fl.path(name), strings.NewReader(value))
	err = errors.Wrapf(err, "failed to write %s", name)
	return
}

// unexported

func (fl *File) path(name string) string {
	return filepath.Join(fl.dir, filepath.Base(name)+ext)
}
