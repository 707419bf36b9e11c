// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Dialects

Two databases are supported, selected by DATABASE_TYPE:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, used by the tests with ":memory:")

Queries are written with ? placeholders and passed through Dialect.Rebind,
which produces $1, $2, ... for PostgreSQL.

# Opening

	conn, err := db.Open(db.SQLite, "file:civic.db")

SQLite connections get foreign_keys and busy_timeout pragmas and a pool of
one connection, so writers are serialized.

# Schema Creation

	if err := db.CreateSchema(conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - proposal: citizen proposals with their vote counter
  - vote: one row per (proposal_id, voter_identifier), UNIQUE
  - budget_simulation: append-only log of municipality budget calculations

# Relationships

	proposal 1──* vote

proposal.seq records insertion order and breaks ties in the vote ranking.
*/
package db
