// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity derives the identifier a vote or simulation is stored
under.

# Derivation

	id := identity.FromRequest(r)

Checks the first X-Forwarded-For entry, then X-Real-IP. Without either
header the identifier is "unknown", so all such clients share one vote
per proposal. RemoteAddr is never used.

The scheme is weak on purpose: clients behind one NAT collapse into one
voter and anyone can forge the headers.

# Client-supplied identifiers

	res := identity.Resolver{Salt: cfg.VoterHashSalt}
	voter := res.Resolve(r, req.VoterIdentifier)

A non-empty identifier from the request body takes precedence over the
headers.

# Hashing

With a salt, identifiers are stored as digests:

	hash := identity.Hash(ip, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256. The same input and
salt always give the same digest, so uniqueness still holds.
*/
package identity
