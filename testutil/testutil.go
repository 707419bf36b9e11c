// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/civic-pulse/budget"
	"github.com/danielhkuo/civic-pulse/cliparse"
	"github.com/danielhkuo/civic-pulse/db"
	"github.com/danielhkuo/civic-pulse/municipality"
	"github.com/danielhkuo/civic-pulse/store"
)

func init() {
	// Match the server: amounts are written as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// TestDBURL is the connection string for the test database
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.SQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, db.SQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore returns a store over a fresh database. The database is
// closed when the test ends.
func SetupTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })
	return store.New(conn, db.SQLite), conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: string(db.SQLite),
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Catalog returns the embedded facility cost table
func Catalog(t *testing.T) *budget.Catalog {
	t.Helper()

	c, err := budget.DefaultCatalog()
	if err != nil {
		t.Fatalf("Failed to load facility catalog: %v", err)
	}
	return c
}

// Directory returns the embedded municipality directory
func Directory(t *testing.T) *municipality.Directory {
	t.Helper()

	d, err := municipality.Default()
	if err != nil {
		t.Fatalf("Failed to load municipality directory: %v", err)
	}
	return d
}

// CreateTestProposal stores an active "add" proposal and returns its ID
func CreateTestProposal(t *testing.T, st *store.Store, title, municipalityID, facilityKind string) string {
	t.Helper()

	p, err := st.CreateProposal(context.Background(), store.NewProposal{
		Title:             title,
		Description:       "Test proposal",
		Province:          "Utrecht",
		MunicipalityID:    municipalityID,
		FacilityKind:      facilityKind,
		EstimatedCost:     decimal.NewFromInt(500),
		AnnualMaintenance: decimal.NewFromInt(400),
		CreatedBy:         "192.0.2.1",
	})
	if err != nil {
		t.Fatalf("Failed to create test proposal: %v", err)
	}

	return p.ID
}

// CastTestVote records a vote directly in the store
func CastTestVote(t *testing.T, st *store.Store, proposalID, voter string) {
	t.Helper()

	if _, err := st.CastVote(context.Background(), proposalID, voter); err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// Envelope mirrors models.Envelope with the payload left undecoded.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Total   *int            `json:"total"`
}

// AssertEnvelope decodes a success envelope and its data into v
func AssertEnvelope(t *testing.T, w *httptest.ResponseRecorder, v interface{}) Envelope {
	t.Helper()

	var env Envelope
	AssertJSON(t, w, &env)
	if !env.Success {
		t.Errorf("Expected success=true. Body: %s", w.Body.String())
	}
	if v != nil {
		if err := json.Unmarshal(env.Data, v); err != nil {
			t.Fatalf("Failed to decode envelope data: %v", err)
		}
	}
	return env
}
