package driver

import (
	"context"
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type conn struct {
	conn *pgx.Conn
}

var (
	_ driver.Conn               = (*conn)(nil)
	_ driver.ConnPrepareContext = (*conn)(nil)
	_ driver.ConnBeginTx        = (*conn)(nil)
	_ driver.Pinger             = (*conn)(nil)
	_ driver.Validator          = (*conn)(nil)
	_ driver.ExecerContext      = (*conn)(nil)
	_ driver.QueryerContext     = (*conn)(nil)
)

func (c *conn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *conn) PrepareContext(_ context.Context, query string) (driver.Stmt, error) {
	// Statements are prepared lazily; pgx handles server-side
	// preparation on first execution.
	return &stmt{conn: c.conn, query: query}, nil
}

func (c *conn) Close() error {
	return c.conn.Close(context.Background())
}

func (c *conn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *conn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	pgxOpts, err := txOptions(opts)
	if err != nil {
		return nil, err
	}
	pgxTx, err := c.conn.BeginTx(ctx, pgxOpts)
	if err != nil {
		return nil, err
	}
	return &tx{tx: pgxTx}, nil
}

func (c *conn) Ping(ctx context.Context) error {
	if c.conn.IsClosed() {
		return driver.ErrBadConn
	}
	return c.conn.Ping(ctx)
}

func (c *conn) IsValid() bool {
	return !c.conn.IsClosed()
}

func (c *conn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	vals, err := positionalValues(args)
	if err != nil {
		return nil, err
	}
	tag, err := c.conn.Exec(ctx, query, vals...)
	if err != nil {
		return nil, err
	}
	return driver.RowsAffected(tag.RowsAffected()), nil
}

func (c *conn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	vals, err := positionalValues(args)
	if err != nil {
		return nil, err
	}
	pgxRows, err := c.conn.Query(ctx, query, vals...)
	if err != nil {
		return nil, err
	}
	return &rows{rows: pgxRows}, nil
}

// positionalValues converts database/sql arguments to positional pgx
// arguments. SerinDB statements use positional $n placeholders only.
func positionalValues(args []driver.NamedValue) ([]any, error) {
	vals := make([]any, len(args))
	for i, a := range args {
		if a.Name != "" {
			return nil, fmt.Errorf("serin: named parameter %q not supported, use positional $%d", a.Name, a.Ordinal)
		}
		vals[i] = a.Value
	}
	return vals, nil
}
