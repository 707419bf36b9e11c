// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/civic-pulse/middleware"
	"github.com/danielhkuo/civic-pulse/municipality"
)

type MunicipalityHandler struct {
	directory *municipality.Directory
}

func NewMunicipalityHandler(dir *municipality.Directory) *MunicipalityHandler {
	return &MunicipalityHandler{directory: dir}
}

// ListMunicipalities handles GET /municipalities
func (h *MunicipalityHandler) ListMunicipalities(w http.ResponseWriter, r *http.Request) {
	all := h.directory.All()
	middleware.ListResponse(w, all, len(all))
}

// GetMunicipality handles GET /municipalities/{slug}
func (h *MunicipalityHandler) GetMunicipality(w http.ResponseWriter, r *http.Request) {
	m, ok := h.directory.BySlug(r.PathValue("slug"))
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "municipality not found")
		return
	}

	middleware.DataResponse(w, http.StatusOK, m, "")
}
