package driver

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type tx struct {
	tx pgx.Tx
}

var _ driver.Tx = (*tx)(nil)

func (t *tx) Commit() error {
	return t.tx.Commit(context.Background())
}

func (t *tx) Rollback() error {
	return t.tx.Rollback(context.Background())
}

func txOptions(opts driver.TxOptions) (pgx.TxOptions, error) {
	var o pgx.TxOptions

	switch level := sql.IsolationLevel(opts.Isolation); level {
	case sql.LevelDefault:
	case sql.LevelReadUncommitted:
		o.IsoLevel = pgx.ReadUncommitted
	case sql.LevelReadCommitted:
		o.IsoLevel = pgx.ReadCommitted
	case sql.LevelRepeatableRead, sql.LevelSnapshot:
		o.IsoLevel = pgx.RepeatableRead
	case sql.LevelSerializable:
		o.IsoLevel = pgx.Serializable
	default:
		return o, fmt.Errorf("serin: unsupported isolation level %v", level)
	}

	if opts.ReadOnly {
		o.AccessMode = pgx.ReadOnly
	}

	return o, nil
}
