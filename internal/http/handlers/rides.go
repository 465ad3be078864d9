package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/domain"
	"odyssweb/internal/errmsg"
	"odyssweb/internal/services"
)

// ListRides serves the rides page: the last search results when a search
// is cached, otherwise the full listing.
func (h *Handlers) ListRides(c *gin.Context) {
	if params, cached, ok := h.SearchCache.Get(); ok {
		c.JSON(http.StatusOK, gin.H{
			"trips":  cached,
			"cached": true,
			"search": gin.H{
				"origin":      params.Origin,
				"destination": params.Destination,
				"date":        params.Date,
				"time":        params.Time,
			},
		})
		return
	}

	trips, err := h.trips(c).ListTrips(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips, "cached": false})
}

// SearchRides runs a new search and replaces the cached results.
func (h *Handlers) SearchRides(c *gin.Context) {
	params := domain.TripSearchParams{
		Origin:      strings.TrimSpace(c.Query("origin")),
		Destination: strings.TrimSpace(c.Query("destination")),
		Date:        strings.TrimSpace(c.Query("date")),
		Time:        strings.TrimSpace(c.Query("time")),
	}

	trips, err := h.trips(c).SearchTrips(c.Request.Context(), params)
	if err != nil {
		RespondServiceError(c, errmsg.ContextSearch, err)
		return
	}
	h.SearchCache.Set(params, trips)
	c.JSON(http.StatusOK, gin.H{"trips": trips, "cached": false})
}

// ClearRideSearch drops the cached search so the listing shows all trips.
func (h *Handlers) ClearRideSearch(c *gin.Context) {
	h.SearchCache.Clear()
	c.Status(http.StatusNoContent)
}

// RideDetail returns the trip, whether the current user is already a
// member, and the seat map. Seat-map failures degrade to an empty list.
func (h *Handlers) RideDetail(c *gin.Context) {
	tripID := c.Param("id")

	trip, err := h.trips(c).GetTrip(c.Request.Context(), tripID)
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripLoading, err)
		return
	}

	seats, err := h.trips(c).TripSeats(c.Request.Context(), tripID)
	if err != nil {
		seats = nil
	}

	c.JSON(http.StatusOK, gin.H{
		"trip":      trip,
		"is_member": trip.IsMember(h.Session.UserID()),
		"seats":     seats,
	})
}

// JoinRide starts the join-payment flow and hands back the gateway's
// authorization URL.
func (h *Handlers) JoinRide(c *gin.Context) {
	user := h.Session.User()
	if user == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	init, err := h.payments(c).JoinTripPayment(c.Request.Context(), services.JoinTripPaymentData{
		TripID: c.Param("id"),
		Email:  user.Email,
	})
	if err != nil {
		RespondServiceError(c, errmsg.ContextPayment, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authorization_url": init.AuthorizationURL,
		"reference":         init.Reference,
	})
}

// InviteToRide invites a registered user by id, or mails an invitation
// link when only an email is given.
func (h *Handlers) InviteToRide(c *gin.Context) {
	var data struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
	}
	if !BindJSONOrError(c, &data) {
		return
	}
	tripID := c.Param("id")

	if data.UserID != "" {
		resp, err := h.trips(c).InviteToTrip(c.Request.Context(), tripID, data.UserID)
		if err != nil {
			RespondServiceError(c, errmsg.ContextTripLoading, err)
			return
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	inviter := ""
	if u := h.Session.User(); u != nil {
		inviter = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	label := ""
	if trip, err := h.trips(c).GetTrip(c.Request.Context(), tripID); err == nil {
		label = trip.Origin + " to " + trip.Destination
	}
	resp, err := h.notifications(c).SendInvitationEmail(c.Request.Context(), data.Email, tripID, label, inviter)
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripLoading, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MyRides lists the trips the current user created or joined.
func (h *Handlers) MyRides(c *gin.Context) {
	trips, err := h.trips(c).MyTrips(c.Request.Context())
	if err != nil {
		RespondServiceError(c, errmsg.ContextTripLoading, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": trips})
}
