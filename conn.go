package serin

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Conn is the concrete implementation of Session backed by a single
// *pgx.Conn. It intentionally wraps (does not embed) the pgx connection.
//
// Conn is not safe for concurrent use; serialize access or open one
// Conn per goroutine.
type Conn struct {
	conn *pgx.Conn
}

var _ Session = (*Conn)(nil)

// Raw returns the underlying pgx connection for low-level operations
// such as CopyFrom or listen/notify. The Conn retains ownership; do not
// close the returned connection directly.
func (c *Conn) Raw() *pgx.Conn {
	return c.conn
}

func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return c.conn.Exec(ctx, sql, args...)
}

func (c *Conn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return c.conn.Query(ctx, sql, args...)
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return c.conn.QueryRow(ctx, sql, args...)
}

func (c *Conn) Begin(ctx context.Context) (pgx.Tx, error) {
	return c.conn.Begin(ctx)
}

func (c *Conn) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return c.conn.BeginTx(ctx, txOptions)
}

func (c *Conn) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c *Conn) Close(ctx context.Context) error {
	return c.conn.Close(ctx)
}
