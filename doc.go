// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the civic-pulse API server.

civic-pulse lets citizens compare Dutch municipalities, check whether a
set of new public facilities fits a yearly budget, submit proposals and
vote on them once each.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=civic.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - FACILITY_COSTS_FILE (-costs): replacement facility cost table
  - VOTER_HASH_SALT (-voter-salt): store voter identifiers as HMAC digests
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format): slog settings

# Architecture

  - budget: facility cost catalog and feasibility calculator
  - store: proposals, votes and the simulation log on database/sql
  - municipality: embedded municipality directory
  - identity: best-effort voter identifiers
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON envelope helpers
  - metrics: Prometheus counters
  - models: Shared types and the error taxonomy
  - db: Connection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
