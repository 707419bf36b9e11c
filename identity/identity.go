// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/danielhkuo/civic-pulse/models"
)

// FromRequest derives the best-effort voter identifier for a request:
// the first X-Forwarded-For entry, else X-Real-IP, else "unknown".
// Both headers are client-controlled, so the result is spoofable and
// clients behind one NAT share an identity.
func FromRequest(r *http.Request) string {
	// Check X-Forwarded-For (load balancers)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	// Check X-Real-IP (nginx)
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	return models.UnknownVoter
}

// Hash creates a one-way hash of an identifier for storage.
// Includes salt to prevent rainbow table attacks
func Hash(id, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(id))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}

// Resolver turns a request into the identifier stored with votes and
// simulations. With an empty Salt identifiers are stored as-is.
type Resolver struct {
	Salt string
}

// Resolve prefers an identifier the client supplied and falls back to
// FromRequest.
func (res Resolver) Resolve(r *http.Request, claimed string) string {
	id := strings.TrimSpace(claimed)
	if id == "" {
		id = FromRequest(r)
	}
	if res.Salt == "" {
		return id
	}
	return Hash(id, res.Salt)
}
