// Package duck provides a DuckDB backed medium and row source.
package duck

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"

	nt "colonnade/entity"
)

// Duck keeps loaded log lines in a "logs" table and column configuration
// items in a "settings" table of the same database.
type Duck struct {
	db       *sql.DB
	filename string

	ctx    context.Context
	logger nt.Logger
}

// New opens a duck database at path, in memory when path is empty.
func New(ctx context.Context, path string, lgr nt.Logger) (dk *Duck, err error) {

	if lgr == nil {
		lgr = nt.Discard
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		err = errors.Wrapf(err, "failed to open duck at %q", path)
		return
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS settings (
			name VARCHAR PRIMARY KEY,
			value VARCHAR NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		err = errors.Wrapf(err, "failed to create settings table")
		return
	}

	dk = &Duck{
		db:     db,
		ctx:    ctx,
		logger: lgr,
	}
	return
}

func (dk *Duck) Close() {
	dk.db.Close()
}

// GetItem returns a settings item.
func (dk *Duck) GetItem(name string) (value string, ok bool, err error) {

	err = dk.db.QueryRow("SELECT value FROM settings WHERE name = ?", name).Scan(&value)
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
func (dk *Duck) SetItem(name, value string) (err error) {

	_, err = dk.db.Exec(`
		INSERT INTO settings (name, value) VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value
	`, name, value)
	err = errors.Wrapf(err, "failed to upsert setting %s", name)
	return
}

// Load reads a newline delimited json file into the logs table.
func (dk *Duck) Load(path string) (err error) {

	_, err = dk.db.Exec(fmt.Sprintf(`
		CREATE OR REPLACE TABLE logs AS
		SELECT
			ROW_NUMBER() OVER () AS id,
			*
		FROM read_json_auto('%s',
			format='newline_delimited',
			maximum_object_size=16777216)
	`, quote(path)))
	if err != nil {
		err = errors.Wrapf(err, "failed to load %s", path)
		return
	}

	dk.filename = path
	dk.logger.Info(dk.ctx, "loaded lines", "path", path)
	return
}

// Name returns the name of the loaded file.
func (dk *Duck) Name() string {
	return dk.filename
}

// Fields returns the fields of the logs table in table order.
func (dk *Duck) Fields() (fields []nt.Field, err error) {

	rows, err := dk.db.Query(`
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = 'logs'
		ORDER BY ordinal_position
	`)
	if err != nil {
		err = errors.Wrapf(err, "failed to query schema")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var field nt.Field
		err = rows.Scan(&field.Name, &field.Type)
		if err != nil {
			err = errors.Wrapf(err, "failed to scan field")
			return
		}
		fields = append(fields, field)
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating fields")
	return
}

// Count returns the number of loaded lines.
func (dk *Duck) Count() (count int, err error) {

	err = dk.db.QueryRow("SELECT COUNT(*) FROM logs").Scan(&count)
	err = errors.Wrapf(err, "failed to count logs")
	return
}

// GetPage returns a page of lines in load order.
func (dk *Duck) GetPage(offset, size int) (lines []nt.Line, err error) {

	rows, err := dk.db.Query("SELECT * FROM logs ORDER BY id LIMIT ? OFFSET ?", size, offset)
	if err != nil {
		err = errors.Wrapf(err, "failed to query logs")
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		err = errors.Wrapf(err, "failed to get cols from query rows")
		return
	}

	for rows.Next() {
		var vals []any
		vals, err = scanRow(rows, len(cols))
		if err != nil {
			err = errors.Wrapf(err, "failed to scan row")
			return
		}

		values := make([]nt.Value, len(vals))
		for i, val := range vals {
			values[i] = nt.Value{Raw: val}
		}

		// id leads every row, see Load
		lines = append(lines, nt.Line{
			Id:     values[0].String(),
			Values: values,
		})
	}

	err = rows.Err()
	err = errors.Wrapf(err, "error iterating rows")
	return
}

// unexported

func scanRow(rows *sql.Rows, count int) ([]any, error) {
	vals := make([]any, count)
	ptrs := make([]any, count)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	err := rows.Scan(ptrs...)
	return vals, err
}

func quote(path string) string {
	return strings.ReplaceAll(path, "'", "''")
}
