package api

import (
	"net/http"

	"github.com/neexbeast/amadeus/internal/normalize"
)

// GetRegion handles GET /api/v1/region/{id}.
func (h *Handlers) GetRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	region, err := h.regions.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, region)
}

// ListRegions handles GET /api/v1/regions.
func (h *Handlers) ListRegions(w http.ResponseWriter, r *http.Request) {
	regions, err := h.regions.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, regions)
}

// SearchRegion handles GET /api/v1/region/search?name=.
func (h *Handlers) SearchRegion(w http.ResponseWriter, r *http.Request) {
	region, err := h.regions.FindByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, region)
}

// CreateRegion handles POST /api/v1/region.
func (h *Handlers) CreateRegion(w http.ResponseWriter, r *http.Request) {
	var in normalize.RegionInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	region, err := h.regions.Create(r.Context(), in.Patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, region)
}

// UpdateRegion handles PATCH /api/v1/region/{id}. Fields absent from the body are left unchanged.
func (h *Handlers) UpdateRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var in normalize.RegionInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	region, err := h.regions.Update(r.Context(), id, in.Patch())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, region)
}

// DeleteRegion handles DELETE /api/v1/region/{id}.
func (h *Handlers) DeleteRegion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.regions.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
