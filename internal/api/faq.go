package api

import (
	"net/http"

	"pcstore-be/internal/faq"
	"pcstore-be/internal/transport"
)

func (h *Handler) ListFAQ(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.FAQSvc.List(r.Context(), faq.Filter{
		Category: q.Get("category"),
		Search:   q.Get("q"),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) GetFAQ(w http.ResponseWriter, r *http.Request) {
	f, err := h.FAQSvc.Get(r.Context(), pathVar(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, f)
}

func (h *Handler) CreateFAQ(w http.ResponseWriter, r *http.Request) {
	var input faq.Input
	if !decode(w, r, &input) {
		return
	}

	f, err := h.FAQSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, f)
}

func (h *Handler) UpdateFAQ(w http.ResponseWriter, r *http.Request) {
	var input faq.Input
	if !decode(w, r, &input) {
		return
	}

	f, err := h.FAQSvc.Update(r.Context(), pathVar(r, "id"), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, f)
}

func (h *Handler) DeleteFAQ(w http.ResponseWriter, r *http.Request) {
	if err := h.FAQSvc.Delete(r.Context(), pathVar(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteMessage(w, http.StatusOK, "FAQ deleted successfully")
}
