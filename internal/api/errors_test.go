package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pcstore-be/internal/appointment"
	"pcstore-be/internal/build"
	"pcstore-be/internal/faq"
	"pcstore-be/internal/inquiry"
	"pcstore-be/internal/order"
	"pcstore-be/internal/prebuild"
	"pcstore-be/internal/product"
	"pcstore-be/internal/user"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &build.ValidationError{Messages: []string{"GPU is required."}}, http.StatusBadRequest},
		{"window", &inquiry.WindowError{Hours: 30}, http.StatusForbidden},
		{"wrapped invalid", fmt.Errorf("%w: missing email", inquiry.ErrInvalidInquiry), http.StatusBadRequest},
		{"exists", prebuild.ErrPrebuildExists, http.StatusBadRequest},
		{"faq exists", faq.ErrFAQExists, http.StatusBadRequest},
		{"credentials", user.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", appointment.ErrForbidden, http.StatusForbidden},
		{"not found", order.ErrOrderNotFound, http.StatusNotFound},
		{"conflict", product.ErrVersionConflict, http.StatusConflict},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
