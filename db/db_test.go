// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"postgres":   Postgres,
		"PostgreSQL": Postgres,
		"sqlite":     SQLite,
		" sqlite3 ":  SQLite,
	} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDialect("mysql")
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	q := "SELECT id FROM proposal WHERE municipality_id = ? AND facility_kind = ?"

	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t,
		"SELECT id FROM proposal WHERE municipality_id = $1 AND facility_kind = $2",
		Postgres.Rebind(q))
}

func TestWithSQLitePragmas(t *testing.T) {
	assert.Equal(t, ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas(":memory:"))
	assert.Equal(t, "file:x.db?mode=rwc&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withSQLitePragmas("file:x.db?mode=rwc"))
	assert.Equal(t, "x.db?_pragma=journal_mode(wal)", withSQLitePragmas("x.db?_pragma=journal_mode(wal)"))
}

func TestCreateSchema_SQLiteIdempotent(t *testing.T) {
	conn, err := Open(SQLite, ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateSchema(conn, SQLite))
	require.NoError(t, CreateSchema(conn, SQLite), "schema creation must be repeatable")

	for _, table := range []string{"proposal", "vote", "budget_simulation"} {
		var name string
		err := conn.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}
