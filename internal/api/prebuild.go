package api

import (
	"net/http"
	"strings"

	"pcstore-be/internal/build"
	"pcstore-be/internal/prebuild"
	"pcstore-be/internal/transport"
)

func (h *Handler) ListPrebuilds(w http.ResponseWriter, r *http.Request) {
	list, err := h.PrebuildSvc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusOK, list)
}

func (h *Handler) ListPrebuildsByCategory(w http.ResponseWriter, r *http.Request) {
	list, err := h.PrebuildSvc.ListByCategory(r.Context(), pathVar(r, "category"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusOK, list)
}

func (h *Handler) GetPrebuild(w http.ResponseWriter, r *http.Request) {
	detail, err := h.PrebuildSvc.Get(r.Context(), pathVar(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusOK, detail)
}

func (h *Handler) CreatePrebuild(w http.ResponseWriter, r *http.Request) {
	var input prebuild.PrebuildInput
	if !decode(w, r, &input) {
		return
	}

	p, err := h.PrebuildSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusCreated, p)
}

func (h *Handler) UpdatePrebuild(w http.ResponseWriter, r *http.Request) {
	var input prebuild.PrebuildInput
	if !decode(w, r, &input) {
		return
	}

	p, err := h.PrebuildSvc.Update(r.Context(), pathVar(r, "id"), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusOK, p)
}

func (h *Handler) DeletePrebuild(w http.ResponseWriter, r *http.Request) {
	if err := h.PrebuildSvc.Delete(r.Context(), pathVar(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteMessage(w, http.StatusOK, "Prebuild deleted successfully")
}

func (h *Handler) PrebuildCompatibility(w http.ResponseWriter, r *http.Request) {
	opts, err := h.PrebuildSvc.Compatibility(r.Context(), pathVar(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusOK, opts.ByField())
}

func (h *Handler) CustomizePrebuild(w http.ResponseWriter, r *http.Request) {
	var sel build.Selection
	if !decode(w, r, &sel) {
		return
	}

	quote, err := h.PrebuildSvc.Customize(r.Context(), pathVar(r, "id"), sel)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusOK, quote)
}

// ComparePrebuilds reads ?ids=a,b.
func (h *Handler) ComparePrebuilds(w http.ResponseWriter, r *http.Request) {
	var ids []string
	for _, id := range strings.Split(r.URL.Query().Get("ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	chart, err := h.PrebuildSvc.Compare(r.Context(), ids)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteData(w, http.StatusOK, chart)
}
