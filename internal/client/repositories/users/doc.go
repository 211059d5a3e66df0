// Package users provides the persistence layer for diary accounts.
//
// # Overview
//
// The package defines a Repository interface for creating users and checking
// credentials. Two implementations exist, both over a dbx.DBTX (either *sql.DB
// or *sql.Tx):
//
//   - SQLiteRepository: the default local diary file (modernc.org/sqlite)
//   - PostgresRepository: an optional server-side store (pgx stdlib driver)
//
// # Errors
//
// A duplicate username is reported as common.ErrUsernameTaken regardless of
// the driver; a failed credential lookup as common.ErrNotFound. Every other
// driver error is wrapped and returned.
package users
