// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store persists proposals, votes and budget simulations.
package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/civic-pulse/db"
)

// Store is the database-backed ledger. It holds no state besides the
// connection pool, so any number of server instances can share a database.
type Store struct {
	conn    *sql.DB
	dialect db.Dialect
	now     func() time.Time
	newID   func() string
}

func New(conn *sql.DB, dialect db.Dialect) *Store {
	return &Store{
		conn:    conn,
		dialect: dialect,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (s *Store) q(query string) string {
	return s.dialect.Rebind(query)
}

type scanner interface {
	Scan(dest ...any) error
}
