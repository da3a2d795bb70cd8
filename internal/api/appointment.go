package api

import (
	"net/http"

	"pcstore-be/internal/appointment"
	"pcstore-be/internal/transport"
)

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var input appointment.Input
	if !decode(w, r, &input) {
		return
	}

	userID, _ := caller(r)
	a, err := h.AppointmentSvc.Create(r.Context(), userID, input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	list, err := h.AppointmentSvc.MyAppointments(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	list, err := h.AppointmentSvc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) GetAppointment(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin := caller(r)
	a, err := h.AppointmentSvc.Get(r.Context(), pathVar(r, "id"), userID, isAdmin)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	var input appointment.Input
	if !decode(w, r, &input) {
		return
	}

	userID, isAdmin := caller(r)
	a, err := h.AppointmentSvc.Update(r.Context(), pathVar(r, "id"), userID, isAdmin, input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}

	a, err := h.AppointmentSvc.UpdateStatus(r.Context(), pathVar(r, "id"), appointment.Status(req.Status))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin := caller(r)
	if err := h.AppointmentSvc.Delete(r.Context(), pathVar(r, "id"), userID, isAdmin); err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteMessage(w, http.StatusOK, "Appointment deleted successfully")
}
