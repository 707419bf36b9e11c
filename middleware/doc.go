// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start at debug level and completion (status, duration_ms)
at info level.

# CORS Middleware

Enable cross-origin requests for the map frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with the Content-Type header, without
credentials.

# Response Envelope

Successful responses share one shape:

	{"success": true, "message": "...", "data": ..., "total": 3}

	middleware.DataResponse(w, http.StatusCreated, proposal, "Proposal created successfully")
	middleware.ListResponse(w, proposals, len(proposals))

Errors carry success=false, the HTTP status text and a message:

	middleware.ErrorResponse(w, http.StatusNotFound, "proposal not found")

# JSON Helpers

	var req models.CreateProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid JSON")
		return
	}
*/
package middleware
