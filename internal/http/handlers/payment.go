package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/errmsg"
	"odyssweb/internal/services"
)

// paymentSucceeded reports whether a verification response means the
// charge went through. The backend answers "success" on the trip paths
// and "paid" on the legacy one.
func paymentSucceeded(status string) bool {
	switch strings.ToLower(status) {
	case "success", "paid":
		return true
	}
	return false
}

// PaymentSuccess is the gateway callback landing page. The reference
// prefix decides which verification path to take; the stashed trip
// payload is only cleared once its payment verified successfully.
func (h *Handlers) PaymentSuccess(c *gin.Context) {
	reference := strings.TrimSpace(c.Query("reference"))
	if reference == "" {
		reference = strings.TrimSpace(c.Query("trxref"))
	}
	if reference == "" {
		RespondError(c, http.StatusBadRequest, "payment reference is required", nil)
		return
	}

	payments := h.payments(c)
	switch services.ClassifyReference(reference) {
	case services.RefPrefixTrip:
		pending := h.Session.PendingTrip()
		if pending == nil {
			RespondError(c, http.StatusBadRequest, "no pending trip for this payment", nil)
			return
		}
		email := ""
		if u := h.Session.User(); u != nil {
			email = u.Email
		}
		verification, err := payments.VerifyTripPayment(c.Request.Context(), services.TripPaymentVerificationData{
			Reference: reference,
			Trip: services.TripPaymentData{
				DepartureLoc:  pending.DepartureLoc,
				ArrivalLoc:    pending.ArrivalLoc,
				DepartureDate: pending.DepartureDate,
				ArrivalDate:   pending.ArrivalDate,
				Seats:         pending.Seats,
				Price:         pending.Price,
				Vehicle:       pending.Vehicle,
				Company:       pending.Company,
				DepartureTOD:  pending.DepartureTOD,
				Creator:       pending.Creator,
				Email:         email,
			},
		})
		if err != nil {
			RespondServiceError(c, errmsg.ContextPayment, err)
			return
		}
		if paymentSucceeded(verification.Status) {
			_ = h.Session.ClearPendingTrip()
		}
		c.JSON(http.StatusOK, verification)

	case services.RefPrefixJoin:
		verification, err := payments.VerifyJoinTripPayment(c.Request.Context(), reference)
		if err != nil {
			RespondServiceError(c, errmsg.ContextPayment, err)
			return
		}
		c.JSON(http.StatusOK, verification)

	default:
		verification, err := payments.VerifyPayment(c.Request.Context(), services.PaymentVerificationData{Reference: reference})
		if err != nil {
			RespondServiceError(c, errmsg.ContextPayment, err)
			return
		}
		c.JSON(http.StatusOK, verification)
	}
}

// PaystackKey exposes the gateway public key to the checkout page.
func (h *Handlers) PaystackKey(c *gin.Context) {
	key, err := h.payments(c).PaystackPublicKey(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextPayment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"public_key": key})
}

// PaymentHistory lists the user's past transactions.
func (h *Handlers) PaymentHistory(c *gin.Context) {
	history, err := h.payments(c).PaymentHistory(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextPayment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": history})
}
