package repositories

import (
	"context"
	"database/sql"
)

// dbConn is the query surface shared by *sql.DB and *sql.Tx. Atomic stores
// the open transaction in the context, so every repository call inside the
// step runs on the same transaction.
type dbConn interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

type txCtxKey struct{}

func withTxConn(ctx context.Context, conn dbConn) context.Context {
	return context.WithValue(ctx, txCtxKey{}, conn)
}

func (r *Repository) writeConn(ctx context.Context) dbConn {
	if conn, ok := ctx.Value(txCtxKey{}).(dbConn); ok {
		return conn
	}
	return r.dbWrite
}

func (r *Repository) readConn(ctx context.Context) dbConn {
	if conn, ok := ctx.Value(txCtxKey{}).(dbConn); ok {
		return conn
	}
	return r.dbRead
}
