package api

import (
	"net/http"

	"pcstore-be/internal/order"
	"pcstore-be/internal/transport"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input order.CreateInput
	if !decode(w, r, &input) {
		return
	}

	userID, _ := caller(r)
	o, err := h.OrderSvc.Create(r.Context(), userID, input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Order created successfully",
		"order":   o,
	})
}

func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	orders, err := h.OrderSvc.MyOrders(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.OrderSvc.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, isAdmin := caller(r)
	o, err := h.OrderSvc.Get(r.Context(), pathVar(r, "id"), userID, isAdmin)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}

	o, err := h.OrderSvc.UpdateStatus(r.Context(), pathVar(r, "id"), order.Status(req.Status))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, o)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.OrderSvc.Delete(r.Context(), pathVar(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteMessage(w, http.StatusOK, "Order deleted successfully")
}
