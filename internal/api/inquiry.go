package api

import (
	"net/http"

	"pcstore-be/internal/inquiry"
	"pcstore-be/internal/transport"
)

type statusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) CreateInquiry(w http.ResponseWriter, r *http.Request) {
	var input inquiry.CreateInput
	if !decode(w, r, &input) {
		return
	}

	userID, _ := caller(r)
	inq, err := h.InquirySvc.Create(r.Context(), userID, input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Inquiry submitted successfully",
		"inquiry": inq,
	})
}

func (h *Handler) MyInquiries(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	list, err := h.InquirySvc.MyInquiries(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) ListInquiries(w http.ResponseWriter, r *http.Request) {
	list, err := h.InquirySvc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) UpdateInquiry(w http.ResponseWriter, r *http.Request) {
	var input inquiry.UpdateInput
	if !decode(w, r, &input) {
		return
	}

	userID, _ := caller(r)
	inq, err := h.InquirySvc.Update(r.Context(), userID, pathVar(r, "id"), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":        "Inquiry updated successfully",
		"updatedInquiry": inq,
	})
}

func (h *Handler) UpdateInquiryStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}

	inq, err := h.InquirySvc.UpdateStatus(r.Context(), pathVar(r, "id"), inquiry.Status(req.Status))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, inq)
}

func (h *Handler) DeleteInquiry(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin := caller(r)
	if err := h.InquirySvc.Delete(r.Context(), userID, pathVar(r, "id"), isAdmin); err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteMessage(w, http.StatusOK, "Inquiry deleted successfully")
}
