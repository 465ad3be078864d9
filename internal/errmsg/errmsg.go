// Package errmsg turns transport and backend errors into copy safe to put
// in front of a user. Technical detail stays in logs.
package errmsg

import (
	"context"
	"errors"
	"net"
	"net/http"
	"regexp"
	"strings"

	"odyssweb/internal/domain"
)

// Contexts select the fallback line when nothing better can be said.
const (
	ContextLogin          = "login"
	ContextSignup         = "signup"
	ContextPayment        = "payment"
	ContextTripCreation   = "trip-creation"
	ContextTripLoading    = "trip-loading"
	ContextCircleCreation = "circle-creation"
	ContextCircleLoading  = "circle-loading"
	ContextProfileLoading = "profile-loading"
	ContextBooking        = "booking"
	ContextSearch         = "search"
	ContextFileUpload     = "file-upload"
	ContextVerification   = "verification"
)

const (
	msgNetwork = "Unable to connect to the server. Please check your internet connection and try again."
	msgTimeout = "Request timed out. Please try again."
	msgGeneric = "Something went wrong. Please try again."
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          "Invalid request. Please check your input and try again.",
	http.StatusUnauthorized:        "You need to log in to perform this action.",
	http.StatusForbidden:           "You don't have permission to perform this action.",
	http.StatusNotFound:            "The requested resource was not found.",
	http.StatusConflict:            "This action conflicts with existing data. Please try a different approach.",
	http.StatusUnprocessableEntity: "The provided information is invalid. Please check your input.",
	http.StatusTooManyRequests:     "Too many requests. Please wait a moment and try again.",
}

var fallbackMessages = map[string]string{
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

var (
	prefixRe     = regexp.MustCompile(`(?i)^(error|api error|validation error|database error|supabase error|axios error|network error):\s*`)
	bracketsRe   = regexp.MustCompile(`\[.*?\]`)
	parensRe     = regexp.MustCompile(`\(.*?\)`)
	stackLineRe  = regexp.MustCompile(`(?m)at\s+.*$`)
	errorCodeRe  = regexp.MustCompile(`Error:\s*\d+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// technical detail markers that mean the message is not for end users,
// matched case-insensitively
var technicalMarkers = []string{"sql", "database", "connection", "timeout", "econn", "enotfound"}

// UserFriendly maps err to a message suitable for display, preferring the
// HTTP status mapping, then a sanitized server message, then the
// context-specific fallback.
func UserFriendly(err error, errContext string) string {
	if err == nil {
		return msgGeneric
	}
	if errors.Is(err, domain.ErrSessionExpired) {
		return "Your session has expired. Please log in again."
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return msgTimeout
		}
		return msgNetwork
	}
	if domain.IsValidation(err) {
		return capitalize(err.Error()) + "."
	}

	if apiErr, ok := domain.AsAPIError(err); ok {
		if msg, ok := statusMessages[apiErr.Status]; ok {
			return msg
		}
		if apiErr.Status >= 500 {
			return "Server is temporarily unavailable. Please try again later."
		}
		if clean := Sanitize(apiErr.Message); clean != "" {
			return clean
		}
	}

	return Fallback(errContext)
}

// AuthFriendly is the login/signup variant: the raw backend message wins
// when present, and a bare 401 means bad credentials rather than a
// missing session.
func AuthFriendly(err error) string {
	if err == nil {
		return msgGeneric
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return msgTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return msgTimeout
		}
		return msgNetwork
	}
	if domain.IsValidation(err) {
		return capitalize(err.Error()) + "."
	}

	if apiErr, ok := domain.AsAPIError(err); ok {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		if apiErr.Status == http.StatusUnauthorized {
			return "Invalid email or password. Please check your credentials and try again."
		}
		if msg, ok := statusMessages[apiErr.Status]; ok {
			return msg
		}
		if apiErr.Status >= 500 {
			return "Server is temporarily unavailable. Please try again later."
		}
	}

	return Fallback(ContextLogin)
}

// Fallback returns the canned line for a context.
func Fallback(errContext string) string {
	if msg, ok := fallbackMessages[errContext]; ok {
		return msg
	}
	return msgGeneric
}

// Sanitize strips technical prefixes, bracketed fragments and stack noise
// from a server message. Returns "" when nothing displayable remains.
func Sanitize(msg string) string {
	clean := prefixRe.ReplaceAllString(msg, "")
	clean = bracketsRe.ReplaceAllString(clean, "")
	clean = parensRe.ReplaceAllString(clean, "")
	clean = stackLineRe.ReplaceAllString(clean, "")
	clean = errorCodeRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))
	if clean == "" {
		return ""
	}
	lower := strings.ToLower(clean)
	for _, marker := range technicalMarkers {
		if strings.Contains(lower, marker) {
			return ""
		}
	}
	return clean
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
