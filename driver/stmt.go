package driver

import (
	"context"
	"database/sql/driver"

	"github.com/jackc/pgx/v5"
)

type stmt struct {
	conn  *pgx.Conn
	query string
}

var (
	_ driver.Stmt             = (*stmt)(nil)
	_ driver.StmtExecContext  = (*stmt)(nil)
	_ driver.StmtQueryContext = (*stmt)(nil)
)

func (s *stmt) Close() error { return nil }

// NumInput returns -1; placeholder counting is left to the server.
func (s *stmt) NumInput() int { return -1 }

func (s *stmt) Exec(args []driver.Value) (driver.Result, error) {
	return s.ExecContext(context.Background(), asNamedValues(args))
}

func (s *stmt) ExecContext(ctx context.Context, args []driver.NamedValue) (driver.Result, error) {
	vals, err := positionalValues(args)
	if err != nil {
		return nil, err
	}
	tag, err := s.conn.Exec(ctx, s.query, vals...)
	if err != nil {
		return nil, err
	}
	return driver.RowsAffected(tag.RowsAffected()), nil
}

func (s *stmt) Query(args []driver.Value) (driver.Rows, error) {
	return s.QueryContext(context.Background(), asNamedValues(args))
}

func (s *stmt) QueryContext(ctx context.Context, args []driver.NamedValue) (driver.Rows, error) {
	vals, err := positionalValues(args)
	if err != nil {
		return nil, err
	}
	pgxRows, err := s.conn.Query(ctx, s.query, vals...)
	if err != nil {
		return nil, err
	}
	return &rows{rows: pgxRows}, nil
}

func asNamedValues(args []driver.Value) []driver.NamedValue {
	named := make([]driver.NamedValue, len(args))
	for i, v := range args {
		named[i] = driver.NamedValue{Ordinal: i + 1, Value: v}
	}
	return named
}
