package api

import (
	"net/http"

	"pcstore-be/internal/metrics"
	mw "pcstore-be/internal/middleware"
	"pcstore-be/internal/upload"

	"github.com/gorilla/mux"
)

// NewRouter registers every route. Handlers that need a caller are
// wrapped in RequireAuth or RequireAdmin; identity itself is attached
// by the outer auth middleware.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	if h.Uploads != nil {
		r.PathPrefix(upload.URLPrefix).Handler(
			http.StripPrefix(upload.URLPrefix, http.FileServer(h.Uploads.FileSystem())),
		).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// auth
	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", mw.RequireAuth(h.Me)).Methods(http.MethodGet)

	api.HandleFunc("/profile", mw.RequireAuth(h.GetProfile)).Methods(http.MethodGet)
	api.HandleFunc("/profile", mw.RequireAuth(h.UpdateProfile)).Methods(http.MethodPut)

	// products
	api.HandleFunc("/products", h.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/products", mw.RequireAdmin(h.CreateProduct)).Methods(http.MethodPost)
	api.HandleFunc("/products/lookup", h.LookupProducts).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", mw.RequireAdmin(h.UpdateProduct)).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", mw.RequireAdmin(h.DeleteProduct)).Methods(http.MethodDelete)

	// prebuilds
	api.HandleFunc("/prebuilds", h.ListPrebuilds).Methods(http.MethodGet)
	api.HandleFunc("/prebuilds", mw.RequireAdmin(h.CreatePrebuild)).Methods(http.MethodPost)
	api.HandleFunc("/prebuilds/compare", h.ComparePrebuilds).Methods(http.MethodGet)
	api.HandleFunc("/prebuilds/category/{category}", h.ListPrebuildsByCategory).Methods(http.MethodGet)
	api.HandleFunc("/prebuilds/{id}", h.GetPrebuild).Methods(http.MethodGet)
	api.HandleFunc("/prebuilds/{id}", mw.RequireAdmin(h.UpdatePrebuild)).Methods(http.MethodPut)
	api.HandleFunc("/prebuilds/{id}", mw.RequireAdmin(h.DeletePrebuild)).Methods(http.MethodDelete)
	api.HandleFunc("/prebuilds/{id}/compatibility", h.PrebuildCompatibility).Methods(http.MethodGet)
	api.HandleFunc("/prebuilds/{id}/customize", h.CustomizePrebuild).Methods(http.MethodPost)

	// inquiries
	api.HandleFunc("/inquiries", mw.RequireAuth(h.CreateInquiry)).Methods(http.MethodPost)
	api.HandleFunc("/inquiries", mw.RequireAdmin(h.ListInquiries)).Methods(http.MethodGet)
	api.HandleFunc("/inquiries/my-inquiry", mw.RequireAuth(h.MyInquiries)).Methods(http.MethodGet)
	api.HandleFunc("/inquiries/update-inquiry/{id}", mw.RequireAuth(h.UpdateInquiry)).Methods(http.MethodPut)
	api.HandleFunc("/inquiries/delete-inquiry/{id}", mw.RequireAuth(h.DeleteInquiry)).Methods(http.MethodDelete)
	api.HandleFunc("/inquiries/{id}/status", mw.RequireAdmin(h.UpdateInquiryStatus)).Methods(http.MethodPatch)

	// orders
	api.HandleFunc("/successorders/create", mw.RequireAuth(h.CreateOrder)).Methods(http.MethodPost)
	api.HandleFunc("/successorders/my-orders", mw.RequireAuth(h.MyOrders)).Methods(http.MethodGet)
	api.HandleFunc("/successorders", mw.RequireAdmin(h.ListOrders)).Methods(http.MethodGet)
	api.HandleFunc("/successorders/{id}", mw.RequireAuth(h.GetOrder)).Methods(http.MethodGet)
	api.HandleFunc("/successorders/{id}/status", mw.RequireAdmin(h.UpdateOrderStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/successorders/{id}", mw.RequireAdmin(h.DeleteOrder)).Methods(http.MethodDelete)

	// appointments
	api.HandleFunc("/appointments", mw.RequireAuth(h.CreateAppointment)).Methods(http.MethodPost)
	api.HandleFunc("/appointments", mw.RequireAdmin(h.ListAppointments)).Methods(http.MethodGet)
	api.HandleFunc("/appointments/my-appointments", mw.RequireAuth(h.MyAppointments)).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", mw.RequireAuth(h.GetAppointment)).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", mw.RequireAuth(h.UpdateAppointment)).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}/status", mw.RequireAdmin(h.UpdateAppointmentStatus)).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}", mw.RequireAuth(h.DeleteAppointment)).Methods(http.MethodDelete)

	// faq
	api.HandleFunc("/faq", h.ListFAQ).Methods(http.MethodGet)
	api.HandleFunc("/faq", mw.RequireAdmin(h.CreateFAQ)).Methods(http.MethodPost)
	api.HandleFunc("/faq/{id}", h.GetFAQ).Methods(http.MethodGet)
	api.HandleFunc("/faq/{id}", mw.RequireAdmin(h.UpdateFAQ)).Methods(http.MethodPut)
	api.HandleFunc("/faq/{id}", mw.RequireAdmin(h.DeleteFAQ)).Methods(http.MethodDelete)

	// ai + uploads
	api.HandleFunc("/ai/generate-description", mw.RequireAuth(h.GenerateDescription)).Methods(http.MethodPost)
	api.HandleFunc("/upload", mw.RequireAuth(h.UploadImage)).Methods(http.MethodPost)

	return r
}
