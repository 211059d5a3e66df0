// Package records provides the persistence layer for diary entries.
//
// The Repository interface covers the four record statements the diary
// needs (insert, list by owner, update content, delete) plus GetByID, which
// the store uses to check ownership before a mutation. SQLiteRepository and
// PostgresRepository implement it over a dbx.DBTX.
//
// ListByUser returns rows in storage order: there is no ORDER BY, so the
// display positions follow whatever order the engine yields (insertion
// order for SQLite rowid tables in practice).
package records
