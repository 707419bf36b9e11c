// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL DSN or SQLite file (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - FacilityCostsFile: YAML file replacing the embedded cost table (optional)
  - VoterHashSalt: when set, voter identifiers are stored as HMAC digests (optional)
  - LogLevel: debug, info, warn or error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-costs        Facility cost table
	-voter-salt   Voter identifier salt
	-log-level    Log level
	-log-format   Log format

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	FACILITY_COSTS_FILE → -costs
	VOTER_HASH_SALT     → -voter-salt
	LOG_LEVEL           → -log-level
	LOG_FORMAT          → -log-format

CLI flags take precedence over environment variables. main loads a .env
file first, so its values behave like environment variables.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, the port is not
numeric or out of range, or the log level or format is unknown.
*/
package cliparse
