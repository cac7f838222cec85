// Package serin provides the Go client for SerinDB using pgx v5.
//
// SerinDB speaks the Postgres wire protocol, so the client delegates
// connection establishment, authentication, and query execution to pgx.
//
// Invariants:
//
//   - I1: Connect blocks until the handle is live or the driver fails;
//     driver errors pass through Connect unchanged.
//   - I2: every Connect call creates and discards its own single-use
//     context; no background resources survive the call.
//   - I3: each returned Conn is independent; closing one never affects
//     another.
//   - I4: connect-path errors from ConnectConfig are safe to log by
//     default.
//
// This package does not pool, retry, or multiplex connections. Callers
// who need pooling should build it above this package.
package serin
