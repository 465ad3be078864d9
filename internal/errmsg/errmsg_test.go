package errmsg

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"odyssweb/internal/domain"
)

func TestUserFriendlyStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, "Invalid request. Please check your input and try again."},
		{http.StatusUnauthorized, "You need to log in to perform this action."},
		{http.StatusForbidden, "You don't have permission to perform this action."},
		{http.StatusNotFound, "The requested resource was not found."},
		{http.StatusConflict, "This action conflicts with existing data. Please try a different approach."},
		{http.StatusUnprocessableEntity, "The provided information is invalid. Please check your input."},
		{http.StatusTooManyRequests, "Too many requests. Please wait a moment and try again."},
		{http.StatusInternalServerError, "Server is temporarily unavailable. Please try again later."},
		{http.StatusBadGateway, "Server is temporarily unavailable. Please try again later."},
	}
	for _, tt := range tests {
		err := &domain.APIError{Status: tt.status, Message: "raw backend text"}
		assert.Equal(t, tt.want, UserFriendly(err, ContextBooking), "status %d", tt.status)
	}
}

func TestUserFriendlySanitizedServerMessage(t *testing.T) {
	err := &domain.APIError{Status: 418, Message: "Error: Seat already taken [row 4]"}
	assert.Equal(t, "Seat already taken", UserFriendly(err, ContextBooking))
}

func TestUserFriendlyContextFallbacks(t *testing.T) {
	err := &domain.APIError{Status: 418}
	tests := map[string]string{
		ContextLogin:          "Login failed. Please check your credentials and try again.",
		ContextSignup:         "Signup failed. Please check your information and try again.",
		ContextPayment:        "Payment processing failed. Please try again or contact support.",
		ContextTripCreation:   "Failed to create trip. Please try again.",
		ContextTripLoading:    "Unable to load trip information. Please refresh the page.",
		ContextCircleCreation: "Failed to create circle. Please try again.",
		ContextCircleLoading:  "Unable to load circle information. Please refresh the page.",
		ContextProfileLoading: "Unable to load profile information. Please refresh the page.",
		ContextBooking:        "Booking failed. Please try again.",
		ContextSearch:         "Search failed. Please try again.",
		ContextFileUpload:     "File upload failed. Please try again.",
		ContextVerification:   "Verification failed. Please try again.",
	}
	for ctx, want := range tests {
		assert.Equal(t, want, UserFriendly(err, ctx), "context %s", ctx)
	}
	assert.Equal(t, "Something went wrong. Please try again.", UserFriendly(err, "unknown"))
}

func TestUserFriendlySessionExpired(t *testing.T) {
	assert.Equal(t, "Your session has expired. Please log in again.",
		UserFriendly(domain.ErrSessionExpired, ContextBooking))
}

func TestAuthFriendlyPrefersBackendMessage(t *testing.T) {
	err := &domain.APIError{Status: http.StatusUnauthorized, Message: "Account locked"}
	assert.Equal(t, "Account locked", AuthFriendly(err))

	bare := &domain.APIError{Status: http.StatusUnauthorized}
	assert.Equal(t, "Invalid email or password. Please check your credentials and try again.", AuthFriendly(bare))
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"prefix stripped", "Error: something broke", "something broke"},
		{"api prefix", "API Error: not allowed", "not allowed"},
		{"brackets removed", "bad seat [row 3] pick another", "bad seat pick another"},
		{"parens removed", "failed (code 42) retry", "failed retry"},
		{"sql leak blocked", "duplicate key in SQL insert", ""},
		{"lowercase sql leak blocked", "sql syntax error near SELECT", ""},
		{"database leak blocked", "database unreachable", ""},
		{"mixed case leak blocked", "Connection refused by upstream", ""},
		{"timeout leak blocked", "Timeout waiting for reply", ""},
		{"whitespace collapsed", "too   many    spaces", "too many spaces"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestUserFriendlyValidation(t *testing.T) {
	err := domain.ValidationError{Field: "seats", Msg: "seats must be positive"}
	assert.Equal(t, "Seats: seats must be positive.", UserFriendly(err, ContextTripCreation))
}

func TestUserFriendlyPlainError(t *testing.T) {
	assert.Equal(t, "Booking failed. Please try again.",
		UserFriendly(errors.New("boom"), ContextBooking))
}
