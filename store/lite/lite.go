// Package lite provides a SQLite backed medium.
package lite

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// Lite keeps items in a settings table of a sqlite database.
type Lite struct {
	db *sql.DB
}

func New(path string) (lt *Lite, err error) {

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open sqlite at %q", path)
		return
	}

	_, err = db.Exec(`
		create table if not exists settings (
			name text primary key,
			value text not null
		)
	`)
	if err != nil {
		db.Close()
		err = errors.Wrapf(err, "failed to create settings table")
		return
	}

	lt = &Lite{db: db}
	return
}

func (lt *Lite) Close() {
	lt.db.Close()
}

// GetItem returns a settings item.
func (lt *Lite) GetItem(name string) (value string, ok bool, err error) {

	err = lt.db.QueryRow("select value from settings where name = ?", name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
		return
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to query setting %s", name)
		return
	}

	ok = true
	return
}

// SetItem upserts a settings item.
func (lt *Lite) SetItem(name, value string) (err error) {

	_, err = lt.db.Exec(`
		insert into settings (name, value) values (?, ?)
		on conflict (name) do update set value = excluded.value
	`, name, value)
	err = errors.Wrapf(err, "failed to upsert setting %s", name)
	return
}
