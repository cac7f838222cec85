package driver

import (
	"database/sql/driver"
	"io"

	"github.com/jackc/pgx/v5"
)

type rows struct {
	rows pgx.Rows
}

var _ driver.Rows = (*rows)(nil)

func (r *rows) Columns() []string {
	fds := r.rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = fd.Name
	}
	return cols
}

func (r *rows) Close() error {
	r.rows.Close()
	return r.rows.Err()
}

func (r *rows) Next(dest []driver.Value) error {
	if !r.rows.Next() {
		if err := r.rows.Err(); err != nil {
			return err
		}
		return io.EOF
	}

	vals, err := r.rows.Values()
	if err != nil {
		return err
	}
	for i := range dest {
		if i < len(vals) {
			dest[i] = vals[i]
		}
	}
	return nil
}
