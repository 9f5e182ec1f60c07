// Package sqlite implements the LawStore port on a single SQLite file.
//
// The schema lives in embedded migrations under migrations/. Full-text
// search uses FTS5 virtual tables that mirror articles and chunks; mirror
// rows are written and cleared only inside the transaction that writes
// their source rows.
package sqlite
