package api

import (
	"errors"
	"net/http"

	"pcstore-be/internal/ai"
	"pcstore-be/internal/appointment"
	"pcstore-be/internal/build"
	"pcstore-be/internal/compare"
	"pcstore-be/internal/faq"
	"pcstore-be/internal/inquiry"
	"pcstore-be/internal/logger"
	"pcstore-be/internal/order"
	"pcstore-be/internal/prebuild"
	"pcstore-be/internal/product"
	"pcstore-be/internal/transport"
	"pcstore-be/internal/upload"
	"pcstore-be/internal/user"

	"go.uber.org/zap"
)

var statusTable = []struct {
	err    error
	status int
}{
	{product.ErrProductNotFound, http.StatusNotFound},
	{prebuild.ErrPrebuildNotFound, http.StatusNotFound},
	{inquiry.ErrInquiryNotFound, http.StatusNotFound},
	{order.ErrOrderNotFound, http.StatusNotFound},
	{appointment.ErrAppointmentNotFound, http.StatusNotFound},
	{faq.ErrFAQNotFound, http.StatusNotFound},
	{user.ErrUserNotFound, http.StatusNotFound},
	{user.ErrProfileNotFound, http.StatusNotFound},

	{product.ErrVersionConflict, http.StatusConflict},
	{prebuild.ErrVersionConflict, http.StatusConflict},
	{inquiry.ErrVersionConflict, http.StatusConflict},

	{inquiry.ErrForbidden, http.StatusForbidden},
	{appointment.ErrForbidden, http.StatusForbidden},
	{order.ErrUnauthorized, http.StatusForbidden},

	{user.ErrInvalidCredentials, http.StatusUnauthorized},

	{product.ErrProductExists, http.StatusBadRequest},
	{prebuild.ErrPrebuildExists, http.StatusBadRequest},
	{order.ErrOrderExists, http.StatusBadRequest},
	{faq.ErrFAQExists, http.StatusBadRequest},
	{user.ErrEmailExists, http.StatusBadRequest},
	{product.ErrInvalidProduct, http.StatusBadRequest},
	{prebuild.ErrInvalidPrebuild, http.StatusBadRequest},
	{inquiry.ErrInvalidInquiry, http.StatusBadRequest},
	{inquiry.ErrInvalidStatus, http.StatusBadRequest},
	{order.ErrInvalidOrder, http.StatusBadRequest},
	{order.ErrInvalidStatus, http.StatusBadRequest},
	{appointment.ErrInvalidAppointment, http.StatusBadRequest},
	{appointment.ErrInvalidStatus, http.StatusBadRequest},
	{faq.ErrInvalidFAQ, http.StatusBadRequest},
	{user.ErrInvalidUser, http.StatusBadRequest},
	{compare.ErrNeedTwoBuilds, http.StatusBadRequest},
	{ai.ErrInvalidInput, http.StatusBadRequest},
	{upload.ErrUnsupportedType, http.StatusBadRequest},
	{upload.ErrTooLarge, http.StatusBadRequest},
	{upload.ErrNoFile, http.StatusBadRequest},

	{ai.ErrNotConfigured, http.StatusServiceUnavailable},
}

func statusFor(err error) int {
	var ve *build.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest
	}
	var we *inquiry.WindowError
	if errors.As(err, &we) {
		return http.StatusForbidden
	}

	for _, e := range statusTable {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps err to its status and writes the {message, error} body.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	var ve *build.ValidationError
	if errors.As(err, &ve) {
		transport.WriteJSON(w, status, transport.ErrorBody{
			Message: "build is incomplete",
			Error:   err.Error(),
			Errors:  ve.Messages,
		})
		return
	}

	if status == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		transport.WriteError(w, status, "Internal server error", err)
		return
	}

	transport.WriteError(w, status, err.Error(), err)
}
