package api

import (
	"net/http"
	"time"

	"pcstore-be/internal/ai"
	"pcstore-be/internal/appointment"
	"pcstore-be/internal/faq"
	"pcstore-be/internal/inquiry"
	"pcstore-be/internal/order"
	"pcstore-be/internal/prebuild"
	"pcstore-be/internal/product"
	"pcstore-be/internal/transport"
	"pcstore-be/internal/upload"
	"pcstore-be/internal/user"
	"pcstore-be/internal/utils"

	"github.com/gorilla/mux"
)

// Handler holds the services behind the REST routes.
type Handler struct {
	ProductSvc     product.Service
	PrebuildSvc    prebuild.Service
	InquirySvc     inquiry.Service
	OrderSvc       order.Service
	UserSvc        user.Service
	AppointmentSvc appointment.Service
	FAQSvc         faq.Service
	AI             ai.Describer
	Uploads        *upload.Store

	TokenTTL     time.Duration
	SecureCookie bool
}

func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

// caller returns the authenticated user id and whether they are an admin.
// Routes using it are wrapped in RequireAuth.
func caller(r *http.Request) (string, bool) {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id, utils.IsAdmin(r.Context())
}

// decode writes a 400 and returns false when the body is not valid JSON.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := transport.DecodeJSON(r, dst); err != nil {
		transport.WriteError(w, http.StatusBadRequest, "Invalid request body", err)
		return false
	}
	return true
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("API is running..."))
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
