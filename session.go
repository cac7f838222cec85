package serin

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Session defines the contract for SerinDB access in application code.
//
// All methods require context.Context so cancellation propagates to
// in-flight operations: when the caller's context is canceled, pgx will
// abort the active query when possible.
//
// Prefer depending on Session rather than *Conn so application code
// remains testable (via TestSession) and decoupled from connection
// lifecycle concerns. Close is included to support graceful shutdown
// through the interface.
type Session interface {
	// Exec executes a query that does not return rows.
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)

	// Query executes a query that returns rows, typically a SELECT.
	// The caller must close the returned Rows when done (use defer rows.Close()).
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)

	// QueryRow executes a query expected to return at most one row.
	// If no rows match, row.Scan() returns pgx.ErrNoRows.
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row

	// Begin starts a transaction with default options.
	// The caller must call tx.Commit() or tx.Rollback().
	// Prefer WithTx for rollback-on-error semantics.
	Begin(ctx context.Context) (pgx.Tx, error)

	// BeginTx starts a transaction with explicit options.
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)

	// Ping verifies connectivity.
	Ping(ctx context.Context) error

	// Close terminates the session. Call once during graceful shutdown.
	Close(ctx context.Context) error
}
