package api

import (
	"net/http"

	"pcstore-be/internal/auth"
	"pcstore-be/internal/transport"
	"pcstore-be/internal/user"
)

type authResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (h *Handler) writeSession(w http.ResponseWriter, status int, token string, u *user.User) {
	ttl := h.TokenTTL
	if ttl <= 0 {
		ttl = auth.TokenTTL
	}
	auth.SetTokenCookie(w, token, ttl, h.SecureCookie)
	transport.WriteJSON(w, status, authResponse{Token: token, User: u})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var input user.RegisterInput
	if !decode(w, r, &input) {
		return
	}

	token, u, err := h.UserSvc.Register(r.Context(), input)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.writeSession(w, http.StatusCreated, token, u)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var input user.LoginInput
	if !decode(w, r, &input) {
		return
	}

	token, u, err := h.UserSvc.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	h.writeSession(w, http.StatusOK, token, u)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w)
	transport.WriteMessage(w, http.StatusOK, "Logged out successfully")
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	u, err := h.UserSvc.Me(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := caller(r)
	p, err := h.UserSvc.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var params user.UpdateProfileParams
	if !decode(w, r, &params) {
		return
	}

	userID, _ := caller(r)
	p, err := h.UserSvc.UpdateProfile(r.Context(), userID, params)
	if err != nil {
		respondError(w, r, err)
		return
	}
	transport.WriteJSON(w, http.StatusOK, p)
}
