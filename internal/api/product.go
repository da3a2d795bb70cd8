package api

import (
	"net/http"

	"pcstore-be/internal/product"
	"pcstore-be/internal/transport"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductSvc.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.ProductSvc.Get(r.Context(), pathVar(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

type lookupRequest struct {
	IDs []string `json:"ids"`
}

func (h *Handler) LookupProducts(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if !decode(w, r, &req) {
		return
	}

	products, err := h.ProductSvc.Lookup(r.Context(), req.IDs)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, products)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input product.ProductInput
	if !decode(w, r, &input) {
		return
	}

	p, err := h.ProductSvc.Create(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var input product.ProductInput
	if !decode(w, r, &input) {
		return
	}

	p, err := h.ProductSvc.Update(r.Context(), pathVar(r, "id"), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.ProductSvc.Delete(r.Context(), pathVar(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteMessage(w, http.StatusOK, "Product deleted successfully")
}
