// Package sqlite implements console storage on SQLite via modernc.org/sqlite.
package sqlite
